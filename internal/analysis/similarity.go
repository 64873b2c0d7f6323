package analysis

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

const (
	// Neutral score returned when a vector space cannot be built at all.
	similarityFallback = 50.0

	// The joint vocabulary is capped at the highest-frequency terms.
	maxVocabularyTerms = 100
)

var (
	// TF-IDF tokens are words of two or more characters; the overlap
	// metric keeps single-character words too.
	tfidfTokenPattern   = regexp.MustCompile(`\b\w\w+\b`)
	overlapTokenPattern = regexp.MustCompile(`\b\w+\b`)
)

// overlapStopWords is the small stop-word set applied to keyword overlap.
var overlapStopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {},
}

// SemanticSimilarity scores how close a resume is to a job description in
// a TF-IDF vector space built jointly over the two documents. Stop words
// are removed, the vocabulary is capped at the top terms by corpus
// frequency (ties broken alphabetically for determinism), term weights use
// smoothed inverse document frequency and the vectors are l2-normalized
// before taking the cosine. Returns 0-100; degenerate input yields the
// neutral fallback instead of an error.
func SemanticSimilarity(resume, jd string) float64 {
	counts := [2]map[string]int{
		termCounts(resume),
		termCounts(jd),
	}

	corpus := make(map[string]int)
	for _, c := range counts {
		for term, n := range c {
			corpus[term] += n
		}
	}
	if len(corpus) == 0 {
		return similarityFallback
	}

	vocab := make([]string, 0, len(corpus))
	for term := range corpus {
		vocab = append(vocab, term)
	}
	sort.Slice(vocab, func(i, j int) bool {
		if corpus[vocab[i]] != corpus[vocab[j]] {
			return corpus[vocab[i]] > corpus[vocab[j]]
		}
		return vocab[i] < vocab[j]
	})
	if len(vocab) > maxVocabularyTerms {
		vocab = vocab[:maxVocabularyTerms]
	}

	var vectors [2][]float64
	for i, c := range counts {
		vec := make([]float64, len(vocab))
		for j, term := range vocab {
			df := 0
			for _, dc := range counts {
				if dc[term] > 0 {
					df++
				}
			}
			// Smoothed idf over a two-document corpus.
			idf := math.Log(3.0/float64(1+df)) + 1
			vec[j] = float64(c[term]) * idf
		}
		normalize(vec)
		vectors[i] = vec
	}

	var dot float64
	for j := range vocab {
		dot += vectors[0][j] * vectors[1][j]
	}
	return dot * 100
}

// KeywordOverlap scores what fraction of the job description's vocabulary
// also appears in the resume, as a 0-100 percentage.
func KeywordOverlap(resume, jd string) float64 {
	resumeWords := wordSet(resume)
	jdWords := wordSet(jd)

	if len(jdWords) == 0 {
		return 0
	}

	overlap := 0
	for w := range jdWords {
		if _, ok := resumeWords[w]; ok {
			overlap++
		}
	}
	return float64(overlap) / float64(len(jdWords)) * 100
}

func termCounts(text string) map[string]int {
	counts := make(map[string]int)
	for _, tok := range tfidfTokenPattern.FindAllString(strings.ToLower(text), -1) {
		if _, stop := englishStopWords[tok]; stop {
			continue
		}
		counts[tok]++
	}
	return counts
}

func wordSet(text string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, tok := range overlapTokenPattern.FindAllString(strings.ToLower(text), -1) {
		if _, stop := overlapStopWords[tok]; stop {
			continue
		}
		words[tok] = struct{}{}
	}
	return words
}

func normalize(vec []float64) {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
}
