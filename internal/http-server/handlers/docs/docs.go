package docs

import (
	_ "embed"
	"log/slog"
	"net/http"
	"sync"

	"eventRegistry/internal/lib/logger/sl"

	"sigs.k8s.io/yaml"
)

//go:embed openapi.yaml
var openAPIYAML []byte

var (
	openAPIJSON    []byte
	openAPIJSONErr error
	openAPIOnce    sync.Once
)

// New serves the embedded OpenAPI document as JSON. The conversion runs once.
func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.docs.New"

		openAPIOnce.Do(func() {
			openAPIJSON, openAPIJSONErr = yaml.YAMLToJSON(openAPIYAML)
		})

		if openAPIJSONErr != nil {
			log.Error("failed to convert openapi document", slog.String("op", op), sl.Err(openAPIJSONErr))
			http.Error(w, "openapi unavailable", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(openAPIJSON)
	}
}
