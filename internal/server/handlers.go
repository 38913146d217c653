package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/pipeline"
	"github.com/jonathan/resume-matcher/internal/types"
)

// maxUploadSize caps multipart resume uploads at 10 MB.
const maxUploadSize = 10 << 20

// TaxonomyResponse represents the response for GET /taxonomy
type TaxonomyResponse struct {
	Skills []string `json:"skills"`
	Count  int      `json:"count"`
}

// handleAnalyze runs one analysis. The request is either a JSON body
// (resume_text plus jd_text or jd_url) or a multipart form with a "resume"
// file upload (.pdf, .docx, .txt) and "jd_text"/"jd_url" fields.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var (
		resume      *types.ParsedResume
		jdText      string
		jdURL       string
		fresherMode bool
	)

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		var err error
		resume, jdText, jdURL, fresherMode, err = s.parseMultipartAnalyze(r)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
	} else {
		var req types.AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
		if err := req.Validate(); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
			return
		}
		resume = parsing.ParseResumeText(req.ResumeText)
		jdText = req.JDText
		jdURL = req.JDURL
		fresherMode = req.FresherMode
	}

	jd, err := s.ingestJD(r, jdText, jdURL)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	report, err := s.analyzer.Analyze(r.Context(), pipeline.Input{
		Resume:         resume,
		JobDescription: jd,
		FresherMode:    fresherMode,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	report.ID = uuid.New().String()
	if s.verbose {
		log.Printf("[VERBOSE] Analysis %s: final=%.3f method=%s", report.ID, report.Scores.FinalScore, report.Scores.Method)
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// parseMultipartAnalyze reads the resume upload and the jd fields from a
// multipart form.
func (s *Server) parseMultipartAnalyze(r *http.Request) (resume *types.ParsedResume, jdText, jdURL string, fresherMode bool, err error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, "", "", false, &ErrValidation{Field: "form", Message: "failed to parse multipart form: " + err.Error()}
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		return nil, "", "", false, &ErrValidation{Field: "resume", Message: "resume file is required"}
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", "", false, &ErrValidation{Field: "resume", Message: "failed to read resume upload: " + err.Error()}
	}

	resume, err = parsing.ParseResumeBytes(header.Filename, data)
	if err != nil {
		return nil, "", "", false, err
	}

	jdText = r.FormValue("jd_text")
	jdURL = r.FormValue("jd_url")
	fresherMode, _ = strconv.ParseBool(r.FormValue("fresher"))
	return resume, jdText, jdURL, fresherMode, nil
}

// ingestJD resolves the job description from inline text or a posting URL.
func (s *Server) ingestJD(r *http.Request, jdText, jdURL string) (string, error) {
	switch {
	case jdText != "" && jdURL != "":
		return "", &ErrValidation{Field: "jd", Message: "jd_text and jd_url are mutually exclusive"}
	case jdURL != "":
		return ingestion.FromURL(r.Context(), jdURL, s.ingestOpts)
	case jdText != "":
		return ingestion.FromText(jdText)
	default:
		return "", &ErrValidation{Field: "jd", Message: "either jd_text or jd_url is required"}
	}
}

// handleTaxonomy lists the skill taxonomy the server matches against.
func (s *Server) handleTaxonomy(w http.ResponseWriter, _ *http.Request) {
	taxonomy := s.analyzer.Taxonomy()
	s.jsonResponse(w, http.StatusOK, TaxonomyResponse{
		Skills: taxonomy,
		Count:  len(taxonomy),
	})
}
