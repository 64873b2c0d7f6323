package services

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"
)

// IndexJob is one resume queued for vector indexing after analysis.
type IndexJob struct {
	ResumeID uuid.UUID
	UserID   string
	Text     string
}

// Indexer embeds analyzed resumes and pushes them into the vector store in
// the background. Indexing is best-effort: a failed job is logged and
// dropped, never retried, and never affects the analysis response.
type Indexer interface {
	Start(ctx context.Context)
	Stop()
	Enqueue(job IndexJob)
}

type indexer struct {
	gemini      GeminiService
	vectorStore VectorStore
	chunker     TextChunker
	jobQueue    chan IndexJob
	concurrency int
	wg          sync.WaitGroup
	stopChan    chan struct{}
}

const indexChunkSize = 1000

func NewIndexer(gemini GeminiService, vectorStore VectorStore, concurrency int) Indexer {
	return &indexer{
		gemini:      gemini,
		vectorStore: vectorStore,
		chunker:     NewTextChunker(),
		jobQueue:    make(chan IndexJob, 100),
		concurrency: concurrency,
		stopChan:    make(chan struct{}),
	}
}

// Start implements Indexer.
func (ix *indexer) Start(ctx context.Context) {
	log.Printf("🚀 Starting resume indexer with %d workers\n", ix.concurrency)

	for i := 0; i < ix.concurrency; i++ {
		ix.wg.Add(1)
		go ix.processJobs(ctx, i+1)
	}
}

// Stop implements Indexer.
func (ix *indexer) Stop() {
	log.Println("🛑 Stopping resume indexer...")
	close(ix.stopChan)
	ix.wg.Wait()
	log.Println("✅ Resume indexer stopped")
}

// Enqueue implements Indexer.
func (ix *indexer) Enqueue(job IndexJob) {
	select {
	case ix.jobQueue <- job:
		log.Printf("📥 Resume %s queued for indexing\n", job.ResumeID)
	case <-ix.stopChan:
		log.Printf("⚠️  Indexer stopped, cannot queue resume %s\n", job.ResumeID)
	default:
		// Queue full; indexing is best-effort, drop rather than block.
		log.Printf("⚠️  Index queue full, dropping resume %s\n", job.ResumeID)
	}
}

func (ix *indexer) processJobs(ctx context.Context, workerID int) {
	defer ix.wg.Done()

	for {
		select {
		case <-ix.stopChan:
			log.Printf("👷 Indexer worker #%d stopped\n", workerID)
			return
		case job := <-ix.jobQueue:
			if err := ix.indexResume(ctx, job); err != nil {
				log.Printf("⚠️  Worker #%d failed to index resume %s: %v\n", workerID, job.ResumeID, err)
			} else {
				log.Printf("✅ Worker #%d indexed resume %s\n", workerID, job.ResumeID)
			}
		}
	}
}

func (ix *indexer) indexResume(ctx context.Context, job IndexJob) error {
	for _, chunk := range ix.chunker.ChunkText(job.Text, indexChunkSize, 100) {
		embedding, err := ix.gemini.GenerateEmbedding(ctx, chunk)
		if err != nil {
			return err
		}

		if err := ix.vectorStore.IndexResumeChunk(ctx, job.ResumeID.String(), job.UserID, chunk, embedding); err != nil {
			return err
		}
	}
	return nil
}
