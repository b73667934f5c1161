// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Brice601/etsydashboard-frontend/internal/auth"
	"github.com/Brice601/etsydashboard-frontend/internal/dataset"
	"github.com/Brice601/etsydashboard-frontend/internal/logging"
	"github.com/Brice601/etsydashboard-frontend/internal/metrics"
)

// kindOption is one entry in the upload page's kind selector.
type kindOption struct {
	Value string
	Label string
}

// uploadReport summarizes an accepted upload for the page.
type uploadReport struct {
	Kept    int
	Dropped int
}

// uploadView is the upload page's view model.
type uploadView struct {
	Kinds     []kindOption
	MaxSizeMB int64
	Uploaded  []string
	Report    *uploadReport
}

func (s *Server) uploadView(sess *auth.Session) uploadView {
	view := uploadView{
		MaxSizeMB: s.cfg.Upload.MaxSizeBytes / (1 << 20),
	}
	for _, k := range dataset.Kinds {
		view.Kinds = append(view.Kinds, kindOption{Value: string(k), Label: k.Label()})
	}
	kinds, err := s.sessions.DatasetKinds(sess)
	if err != nil {
		logging.Warn().Err(err).Msg("Failed to list session datasets")
	}
	for _, k := range kinds {
		view.Uploaded = append(view.Uploaded, k.Label())
	}
	return view
}

func (s *Server) uploadPage(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFrom(r.Context())

	page := s.pageFor(r)
	page.Meta = s.presets.App("Upload", "/upload")
	page.Data = s.uploadView(sess)
	s.render.Render(w, http.StatusOK, "upload", page)
}

func (s *Server) uploadSubmit(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFrom(r.Context())

	page := s.pageFor(r)
	page.Meta = s.presets.App("Upload", "/upload")

	// Multipart overhead on top of the file cap.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxSizeBytes+(64<<10))
	if err := r.ParseMultipartForm(s.cfg.Upload.MaxSizeBytes); err != nil {
		page.Errors["file"] = fmt.Sprintf("The file is too large. The limit is %d MB.", s.cfg.Upload.MaxSizeBytes/(1<<20))
		page.Data = s.uploadView(sess)
		s.render.Render(w, http.StatusOK, "upload", page)
		return
	}

	kind, err := dataset.ParseKind(r.PostFormValue("kind"))
	if err != nil {
		page.Errors["kind"] = "Pick one of the listed export types."
		page.Data = s.uploadView(sess)
		s.render.Render(w, http.StatusOK, "upload", page)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		page.Errors["file"] = "Choose a file to upload."
		page.Data = s.uploadView(sess)
		s.render.Render(w, http.StatusOK, "upload", page)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues(string(kind), "rejected").Inc()
		page.Errors["file"] = "Reading the file failed. Try again."
		page.Data = s.uploadView(sess)
		s.render.Render(w, http.StatusOK, "upload", page)
		return
	}

	report, err := validateDataset(kind, data)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues(string(kind), "rejected").Inc()
		page.Errors["file"] = uploadErrorMessage(kind, err)
		page.Data = s.uploadView(sess)
		s.render.Render(w, http.StatusOK, "upload", page)
		return
	}

	if err := s.sessions.StoreDataset(sess, kind, data); err != nil {
		logging.Err(err).Str("kind", string(kind)).Msg("Failed to store dataset")
		s.render.RenderError(w, http.StatusInternalServerError, "Storing the upload failed. Try again.")
		return
	}

	// Consent-gated archival happens off the request path.
	s.collector.Submit(sess.Account(), kind, data)
	metrics.UploadsTotal.WithLabelValues(string(kind), "accepted").Inc()

	page.Flash = fmt.Sprintf("%s uploaded.", kind.Label())
	view := s.uploadView(sess)
	view.Report = &report
	page.Data = view
	s.render.Render(w, http.StatusOK, "upload", page)
}

func (s *Server) uploadClear(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFrom(r.Context())
	if err := s.sessions.ClearDatasets(sess); err != nil {
		logging.Warn().Err(err).Msg("Failed to clear session datasets")
	}
	http.Redirect(w, r, "/upload", http.StatusSeeOther)
}

// validateDataset parses the upload so broken files are rejected at the
// door. The raw bytes are what gets stored; dashboards re-parse on render.
func validateDataset(kind dataset.Kind, data []byte) (uploadReport, error) {
	switch kind {
	case dataset.KindReviews:
		reviews, err := dataset.ParseReviews(data)
		if err != nil {
			return uploadReport{}, err
		}
		return uploadReport{Kept: len(reviews)}, nil
	case dataset.KindListings:
		_, parsed, err := dataset.ParseListings(data)
		if err != nil {
			return uploadReport{}, err
		}
		return uploadReport{Kept: parsed.KeptRows, Dropped: parsed.DroppedRows}, nil
	default:
		_, parsed, err := dataset.ParseSales(kind, data)
		if err != nil {
			return uploadReport{}, err
		}
		return uploadReport{Kept: parsed.KeptRows, Dropped: parsed.DroppedRows}, nil
	}
}

// uploadErrorMessage renders parse failures as actionable inline text.
func uploadErrorMessage(kind dataset.Kind, err error) string {
	var missing *dataset.MissingColumnsError
	if errors.As(err, &missing) {
		return missing.Error()
	}
	return fmt.Sprintf("This does not look like a %s export. Check you picked the right file and type.", kind.Label())
}

// uploadedDataset fetches a stored dataset, nil when absent.
func (s *Server) uploadedDataset(sess *auth.Session, kind dataset.Kind) []byte {
	data, err := s.sessions.Dataset(sess, kind)
	if err != nil {
		return nil
	}
	return data
}
