package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/browser"
	"github.com/tdewolff/cube"
	"github.com/tdewolff/cube/svg"
)

type Serve struct {
	Port int  `short:"p" desc:"Port to listen on, defaults to $PORT or 8080"`
	Open bool `short:"o" desc:"Open an example diagram in the browser"`
}

func (cmd *Serve) Run() error {
	port := strconv.Itoa(cmd.Port)
	if cmd.Port == 0 {
		if port = os.Getenv("PORT"); port == "" {
			port = "8080"
		}
	}

	log.Printf("Listening on http://localhost:%s", port)
	if cmd.Open {
		if err := browser.OpenURL("http://localhost:" + port + "/oll?desc=LUR+L%3DR+LDR"); err != nil {
			log.Println("ERROR:", err)
		}
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           newRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

func newRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/oll", diagramHandler("desc", func(s string) (cube.Diagram, error) {
		desc, err := cube.ParseFaceDescriptor(s)
		if err != nil {
			return nil, err
		}
		return desc, nil
	}))
	r.Get("/pll", diagramHandler("program", func(s string) (cube.Diagram, error) {
		prog, err := cube.ParsePLLProgram(s)
		if err != nil {
			return nil, err
		}
		return prog, nil
	}))
	r.Get("/diagram", diagramHandler("spec", cube.ParseDiagram))
	return r
}

var errBadSize = fmt.Errorf("size must be an integer in 1..%d", cube.MaxCubieSize)

// diagramHandler renders the notation in query parameter key. The optional parameters size and minify set the cubie size and minify the output.
func diagramHandler(key string, parseDiagram func(string) (cube.Diagram, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		cfg := cube.DefaultSizeConfig
		if size := query.Get("size"); size != "" {
			n, err := strconv.Atoi(size)
			if err != nil || !cube.FromCubieSize(n).Valid() {
				http.Error(w, fmt.Sprintf("%v: %q", errBadSize, size), http.StatusBadRequest)
				return
			}
			cfg = cube.FromCubieSize(n)
		}

		diagram, err := parseDiagram(query.Get(key))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		s := diagram.Render(cfg)
		if minify, _ := strconv.ParseBool(query.Get("minify")); minify {
			if s, err = svg.Minify(s); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
		}
		w.Header().Set("Content-Type", svg.MediaType)
		w.Write([]byte(s))
	}
}
