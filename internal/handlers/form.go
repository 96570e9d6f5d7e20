// form.go serves the browser form at "/".
//
// GET  / — render the empty form
// POST / — run the selected action and render the result under its heading
//
// Go Pattern: html/template escapes everything it interpolates, so the
// generated text (which we don't control) is rendered as plain text.
package handlers

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shimizu-Technology/resume-ai/internal/apperrors"
	"github.com/Shimizu-Technology/resume-ai/internal/middleware"
	"github.com/Shimizu-Technology/resume-ai/internal/models"
	"github.com/Shimizu-Technology/resume-ai/internal/prompts"
	"github.com/Shimizu-Technology/resume-ai/internal/services/analysis"
)

//go:embed templates/index.html
var templateFS embed.FS

// formTemplateName is the name gin renders the form under.
const formTemplateName = "index.html"

// FormTemplate parses the embedded form template. The router installs it
// with gin's SetHTMLTemplate.
func FormTemplate() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/"+formTemplateName))
}

// formPage is everything the form template renders.
type formPage struct {
	Modes          []prompts.Template
	JobDescription string // Echoed back so the user doesn't lose it
	Warning        string
	Error          string
	Result         *resultView
}

type resultView struct {
	Label     string
	Text      string
	Model     string
	PageCount int
	WordCount int
	Duration  string
}

// ShowForm renders the empty form.
// GET /
func (h *Handler) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, formTemplateName, formPage{Modes: h.Catalog.All()})
}

// SubmitForm runs the action whose button was pressed and re-renders the
// form with the result, a warning, or an error.
// POST /
func (h *Handler) SubmitForm(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	page := formPage{Modes: h.Catalog.All()}

	data, err := h.readUpload(c)
	page.JobDescription = c.PostForm(fieldJobDescription)
	var ue *uploadError
	if errors.As(err, &ue) {
		page.Error = ue.msg
		c.HTML(ue.status, formTemplateName, page)
		return
	}

	res, err := h.Analysis.Run(c.Request.Context(), analysis.Input{
		RequestID:      requestID,
		JobDescription: page.JobDescription,
		Document:       data,
		Mode:           models.Mode(c.PostForm(fieldMode)),
	})
	if err != nil {
		status := statusFor(err)
		h.logFailure(requestID, err, status)
		if apperrors.IsWarning(err) {
			page.Warning = apperrors.UserMessage(err)
		} else {
			page.Error = apperrors.UserMessage(err)
		}
		c.HTML(status, formTemplateName, page)
		return
	}

	page.Result = &resultView{
		Label:     res.Label,
		Text:      res.Text,
		Model:     res.Model,
		PageCount: res.PageCount,
		WordCount: res.WordCount,
		Duration:  res.Duration.Round(100 * time.Millisecond).String(),
	}
	c.HTML(http.StatusOK, formTemplateName, page)
}
