// Package web is the local upload page and JSON API for timecard reports.
// It is meant for a single user on localhost and has no authentication.
package web

import (
	"bytes"
	"embed"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"timecard/config"
	"timecard/importer"
	"timecard/output"
	"timecard/report"
	"timecard/timecard"
)

//go:embed templates/*.html
var templateFS embed.FS

type Server struct {
	cfg    config.Config
	logger *zap.Logger
	mux    *http.ServeMux
}

type rowView struct {
	Date        string `json:"date"`
	ClockInTime string `json:"clockInTime"`
	MinutesLate *int   `json:"minutesLate"`
	Status      string `json:"status"`
}

type statsView struct {
	Worked      int     `json:"worked"`
	Late        int     `json:"late"`
	PercentLate float64 `json:"percentLate"`
}

type reportResponse struct {
	ReportID    string    `json:"reportId"`
	FileName    string    `json:"fileName"`
	Rows        []rowView `json:"rows"`
	Summary     []rowView `json:"summary"`
	Stats       statsView `json:"stats"`
	Diagnostics []string  `json:"diagnostics"`
}

type indexPageView struct {
	Title         string
	MaxUploadMB   int
	AcceptFormats string
	Error         string
}

type reportPageView struct {
	Title        string
	ReportID     string
	SourceFile   string
	Columns      []string
	Rows         []rowView
	Summary      []rowView
	Diagnostics  []string
	DownloadName string
	DownloadURL  template.URL
}

// upload is a parsed and processed upload.
type upload struct {
	id       string
	fileName string
	result   *report.Result
}

var errBadUpload = errors.New("bad upload")

func NewServer(cfg config.Config, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	server := &Server{
		cfg:    cfg,
		logger: logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", server.handleIndex)
	mux.HandleFunc("POST /report", server.handleReport)
	mux.HandleFunc("POST /api/report", server.handleAPIReport)
	mux.HandleFunc("POST /api/report/download", server.handleAPIDownload)
	server.mux = mux

	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderIndex(w, http.StatusOK, "")
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	up, err := s.processUpload(r)
	if err != nil {
		s.renderIndex(w, uploadErrorStatus(err), err.Error())
		return
	}
	w.Header().Set("X-Report-ID", up.id)

	table := up.result.Table
	view := reportPageView{
		Title:       "Timecard report - " + up.fileName,
		ReportID:    up.id,
		SourceFile:  up.fileName,
		Columns:     timecard.Columns,
		Rows:        rowViews(table.Rows),
		Summary:     rowViews(table.Summary),
		Diagnostics: diagnosticMessages(up.result.Diagnostics),
	}
	if !table.Empty() {
		writer := &output.CSVWriter{}
		var buf bytes.Buffer
		if err := writer.Write(&buf, table); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		view.DownloadName = s.downloadName(writer)
		view.DownloadURL = template.URL("data:text/csv;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()))
	}

	if err := renderTemplate(w, http.StatusOK, "report.html", view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleAPIReport(w http.ResponseWriter, r *http.Request) {
	up, err := s.processUpload(r)
	if err != nil {
		http.Error(w, err.Error(), uploadErrorStatus(err))
		return
	}
	w.Header().Set("X-Report-ID", up.id)

	table := up.result.Table
	writeJSON(w, http.StatusOK, reportResponse{
		ReportID: up.id,
		FileName: up.fileName,
		Rows:     rowViews(table.Rows),
		Summary:  rowViews(table.Summary),
		Stats: statsView{
			Worked:      table.Stats.Worked,
			Late:        table.Stats.Late,
			PercentLate: table.Stats.PercentLate,
		},
		Diagnostics: diagnosticMessages(up.result.Diagnostics),
	})
}

func (s *Server) handleAPIDownload(w http.ResponseWriter, r *http.Request) {
	format := strings.TrimSpace(r.URL.Query().Get("format"))
	if format == "" {
		format = s.cfg.Report.OutputFormat
	}
	writer, err := output.WriterForFormat(format)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	up, err := s.processUpload(r)
	if err != nil {
		http.Error(w, err.Error(), uploadErrorStatus(err))
		return
	}

	var buf bytes.Buffer
	if err := writer.Write(&buf, up.result.Table); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("X-Report-ID", up.id)
	w.Header().Set("Content-Type", writer.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", s.downloadName(writer)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// processUpload stores the multipart "file" field in a temp file that keeps
// the original extension, reads its first sheet and builds the report.
func (s *Server) processUpload(r *http.Request) (*upload, error) {
	maxBytes := s.cfg.Serve.MaxUploadBytes()
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return nil, fmt.Errorf("%w: parse multipart form: %v", errBadUpload, err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("%w: missing file upload", errBadUpload)
	}
	defer file.Close()

	if header.Size > maxBytes {
		return nil, fmt.Errorf("%w: file exceeds %d MB", errBadUpload, s.cfg.Serve.MaxUploadMB)
	}
	if _, err := importer.InferFormat(header.Filename, ""); err != nil {
		return nil, fmt.Errorf("%w: %v", errBadUpload, err)
	}

	tmp, err := os.CreateTemp("", tempUploadPattern(header.Filename))
	if err != nil {
		return nil, fmt.Errorf("create temp upload: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, file); err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("save upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("close upload temp file: %w", err)
	}

	id := uuid.NewString()
	logger := s.logger.With(zap.String("report_id", id), zap.String("file", header.Filename))

	grid, err := importer.ReadFile(tmpPath, "")
	if err != nil {
		logger.Warn("read upload failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", errBadUpload, err)
	}

	result := report.Build(grid)
	result.LogDiagnostics(logger)
	logger.Info("report built",
		zap.Int("rows", len(result.Table.Rows)),
		zap.Int("worked", result.Table.Stats.Worked),
		zap.Int("late", result.Table.Stats.Late),
		zap.Int("skipped", result.RowsSkipped),
	)

	return &upload{id: id, fileName: filepath.Base(header.Filename), result: result}, nil
}

func (s *Server) renderIndex(w http.ResponseWriter, status int, message string) {
	view := indexPageView{
		Title:         "Timecard checker",
		MaxUploadMB:   s.cfg.Serve.MaxUploadMB,
		AcceptFormats: ".xlsx,.xlsm,.xls,.csv",
		Error:         message,
	}
	if err := renderTemplate(w, status, "index.html", view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) downloadName(writer output.Writer) string {
	name := strings.TrimSpace(s.cfg.Report.FileName)
	if name == "" {
		name = output.DefaultFileName
	}
	return name + "." + writer.Extension()
}

func renderTemplate(w http.ResponseWriter, status int, pageTemplate string, data any) error {
	tmpl, err := template.New("base.html").Funcs(template.FuncMap{
		"fmtMinutes": func(value *int) string {
			if value == nil {
				return ""
			}
			return fmt.Sprintf("%d", *value)
		},
		"statusClass": func(status string) string {
			return strings.ToLower(strings.ReplaceAll(status, " ", "-"))
		},
	}).ParseFS(templateFS, "templates/base.html", "templates/"+pageTemplate)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", pageTemplate, err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("render template %s: %w", pageTemplate, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
	return nil
}

func rowViews(rows []timecard.Row) []rowView {
	out := make([]rowView, 0, len(rows))
	for _, row := range rows {
		record := row.Record()
		out = append(out, rowView{
			Date:        record[0],
			ClockInTime: record[1],
			MinutesLate: row.MinutesLate,
			Status:      record[3],
		})
	}
	return out
}

func diagnosticMessages(diagnostics []error) []string {
	out := make([]string, 0, len(diagnostics))
	for _, diagnostic := range diagnostics {
		out = append(out, diagnostic.Error())
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func uploadErrorStatus(err error) int {
	if errors.Is(err, errBadUpload) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func tempUploadPattern(filename string) string {
	base := filepath.Base(strings.TrimSpace(filename))
	if base == "" || base == "." {
		return "upload-*"
	}

	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		stem = "upload"
	}
	if ext == "" {
		return stem + "-*"
	}
	return stem + "-*" + ext
}
