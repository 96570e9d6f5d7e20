// export.go renders a finished analysis as a downloadable file.
//
// POST /api/v1/analyses?format=json|txt|md
//
// Supported formats:
//   - json — models.AnalysisResponse (the default, not an attachment)
//   - txt  — The generated text only
//   - md   — Markdown with a metadata header
//
// Go Pattern: Each export format is its own function. This makes it easy
// to add new formats later — just add a case to the switch and a new
// formatter function. This is the "Strategy pattern" without the ceremony.
package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shimizu-Technology/resume-ai/internal/models"
	"github.com/Shimizu-Technology/resume-ai/internal/services/analysis"
)

// Export formats accepted in the "format" query parameter.
const (
	formatJSON     = "json"
	formatText     = "txt"
	formatMarkdown = "md"
)

var validFormats = map[string]bool{formatJSON: true, formatText: true, formatMarkdown: true}

// exportFilename names the download after the result heading.
func exportFilename(res *analysis.Result) string {
	name := sanitizeFilename(res.Label)
	if name == "" {
		name = string(res.Mode)
	}
	return name
}

// exportTXT returns the generated text as plain text.
func exportTXT(c *gin.Context, res *analysis.Result) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.txt"`, exportFilename(res)))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(res.Text))
}

// exportMarkdown returns the generated text as Markdown with a metadata
// header: mode, model, what was read from the resume, and when.
func exportMarkdown(c *gin.Context, res *analysis.Result, requestID string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", res.Label))
	sb.WriteString("| Field | Value |\n")
	sb.WriteString("|-------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Mode | %s |\n", res.Mode))
	sb.WriteString(fmt.Sprintf("| Model | %s |\n", res.Model))
	sb.WriteString(fmt.Sprintf("| Resume | %d pages, %d words |\n", res.PageCount, res.WordCount))
	sb.WriteString(fmt.Sprintf("| Request | %s |\n", requestID))
	sb.WriteString(fmt.Sprintf("| Generated | %s |\n", time.Now().UTC().Format("2006-01-02 15:04:05 MST")))
	sb.WriteString("\n---\n\n")
	sb.WriteString(res.Text)
	if !strings.HasSuffix(res.Text, "\n") {
		sb.WriteString("\n")
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.md"`, exportFilename(res)))
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(sb.String()))
}

// exportJSON returns the standard API response.
func exportJSON(c *gin.Context, res *analysis.Result, requestID string) {
	c.JSON(http.StatusOK, models.AnalysisResponse{
		RequestID:  requestID,
		Mode:       res.Mode,
		Label:      res.Label,
		Text:       res.Text,
		Model:      res.Model,
		PageCount:  res.PageCount,
		WordCount:  res.WordCount,
		DurationMS: res.Duration.Milliseconds(),
	})
}

// sanitizeFilename makes a string safe for use in a Content-Disposition
// filename: path separators and reserved characters become hyphens, runs
// of spaces and hyphens collapse, and the result is capped at 100 bytes.
func sanitizeFilename(name string) string {
	// Replace common unsafe characters
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "-",
		"?", "-", "\"", "-", "<", "-", ">", "-",
		"|", "-", "\n", " ", "\r", "",
	)
	name = replacer.Replace(name)

	// Collapse multiple hyphens/spaces
	for strings.Contains(name, "  ") {
		name = strings.ReplaceAll(name, "  ", " ")
	}
	for strings.Contains(name, "--") {
		name = strings.ReplaceAll(name, "--", "-")
	}

	name = strings.TrimSpace(name)

	if len(name) > 100 {
		name = name[:100]
	}

	return name
}
