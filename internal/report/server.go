package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// reportInfo is one entry in the /api/reports listing.
type reportInfo struct {
	Name     string `json:"name"`
	Format   string `json:"format"`
	Size     int64  `json:"size"`
	Modified string `json:"modified"`
	URL      string `json:"url"`
}

// NewRouter builds the local report server router: health check, a JSON
// listing of exported reports, and static serving of the reports directory.
func NewRouter(dir string) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/api/reports", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		reports, err := listReports(dir)
		if err != nil {
			http.Error(w, `{"error":"unable to list reports"}`, http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(reports)
	})

	fs := http.FileServer(http.Dir(dir))
	r.Handle("/*", fs)

	return r
}

// listReports collects exported artifacts from dir, newest first.
func listReports(dir string) ([]reportInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []reportInfo{}, nil
		}
		return nil, err
	}

	reports := []reportInfo{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".html" && ext != ".pdf" && ext != ".md" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		reports = append(reports, reportInfo{
			Name:     e.Name(),
			Format:   strings.TrimPrefix(ext, "."),
			Size:     info.Size(),
			Modified: info.ModTime().UTC().Format(time.RFC3339),
			URL:      "/" + e.Name(),
		})
	}

	sort.Slice(reports, func(i, j int) bool { return reports[i].Modified > reports[j].Modified })
	return reports, nil
}

// Serve starts the local report server on the given port, optionally opening
// the browser first.
func Serve(dir string, port int, open bool) error {
	addr := fmt.Sprintf(":%d", port)
	url := fmt.Sprintf("http://localhost:%d", port)

	if open {
		go openBrowser(url)
	}

	fmt.Printf("Serving reports from %s at %s\n", dir, url)
	fmt.Println("Press Ctrl+C to stop.")

	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(dir),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
