// Package analysis runs the one-shot pipeline behind every action button:
// validate inputs, extract the resume text, pick the instruction template,
// dispatch to the generation service.
package analysis

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Shimizu-Technology/resume-ai/internal/apperrors"
	"github.com/Shimizu-Technology/resume-ai/internal/models"
	"github.com/Shimizu-Technology/resume-ai/internal/prompts"
	pdfservice "github.com/Shimizu-Technology/resume-ai/internal/services/pdf"
)

// Dispatcher is the slice of generation.Service this package needs.
type Dispatcher interface {
	Generate(ctx context.Context, jobDescription, resumeText, instruction string) (string, error)
	Model() string
}

// Input is one user action: the form contents plus which button was pressed.
type Input struct {
	RequestID      string
	JobDescription string
	Document       []byte // Raw PDF bytes; nil when nothing was uploaded
	Mode           models.Mode
}

// Result is a successful analysis, ready to render.
type Result struct {
	Mode      models.Mode
	Label     string
	Text      string
	Model     string
	PageCount int
	WordCount int
	Duration  time.Duration
}

// Service runs analyses.
type Service struct {
	dispatcher Dispatcher
	catalog    *prompts.Catalog
}

// New creates an analysis service.
func New(d Dispatcher, catalog *prompts.Catalog) *Service {
	return &Service{dispatcher: d, catalog: catalog}
}

// Catalog returns the templates this service selects from.
func (s *Service) Catalog() *prompts.Catalog {
	return s.catalog
}

// Run executes one analysis. On any failure the result is nil and the error
// is classified by apperrors; the generation service is only contacted when
// a document and a job description are both present and the document parsed.
func (s *Service) Run(ctx context.Context, in Input) (*Result, error) {
	start := time.Now()

	if len(in.Document) == 0 {
		return nil, apperrors.ErrMissingDocument
	}

	tmpl, err := s.catalog.Get(in.Mode)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.JobDescription) == "" {
		return nil, apperrors.ErrMissingJobDescription
	}

	extraction, err := pdfservice.Extract(in.Document)
	if err != nil {
		log.Printf("⚠️  [%s] Resume extraction failed: %v", in.RequestID, err)
		return nil, fmt.Errorf("extract resume: %w", err)
	}

	if extraction.Text == "" {
		// Image-only scans have no text layer. We still forward the request;
		// the model will answer from the job description alone.
		log.Printf("⚠️  [%s] Resume has no extractable text (%d pages)", in.RequestID, extraction.PageCount)
	}

	log.Printf("📄 [%s] %s: %d pages, %d words extracted", in.RequestID, in.Mode, extraction.PageCount, extraction.WordCount)

	text, err := s.dispatcher.Generate(ctx, in.JobDescription, extraction.Text, tmpl.Instruction)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Mode:      in.Mode,
		Label:     tmpl.Label,
		Text:      text,
		Model:     s.dispatcher.Model(),
		PageCount: extraction.PageCount,
		WordCount: extraction.WordCount,
		Duration:  time.Since(start),
	}
	log.Printf("✅ [%s] %s completed in %s", in.RequestID, in.Mode, res.Duration.Round(time.Millisecond))
	return res, nil
}
