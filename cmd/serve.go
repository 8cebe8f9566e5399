package cmd

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/scalefinder/constants"
	"github.com/jsphweid/scalefinder/engine"
	"github.com/jsphweid/scalefinder/logger"
	"github.com/jsphweid/scalefinder/model"
	"github.com/jsphweid/scalefinder/pitch"
	"github.com/jsphweid/scalefinder/scale"
	"github.com/jsphweid/scalefinder/session"
	"github.com/jsphweid/scalefinder/view"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var (
	serveAddr string
	serveTTL  time.Duration
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", constants.GetAddr(), "address to listen on")
	serveCmd.Flags().DurationVar(&serveTTL, "session-ttl", constants.GetSessionTTL(), "drop sessions idle for this long")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the scale finder over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(serveAddr, serveTTL)
	},
}

type api struct {
	catalog scale.Catalog
	store   *session.Store
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.HTTP.Println("Could not encode response: " + err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func (a *api) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.CatalogResponse{Scales: view.Buttons(a.catalog)})
}

func (a *api) handleMatch(w http.ResponseWriter, r *http.Request) {
	sel, err := pitch.ParseSet(r.URL.Query()["notes"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	m := engine.Match(sel, a.catalog)
	writeJSON(w, http.StatusOK, model.MatchResponse{
		Selection: sel.Ints(),
		Filtered:  !sel.Empty(),
		Majors:    view.Buttons(m.Majors),
		Minors:    view.Buttons(m.Minors),
	})
}

func (a *api) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	s := a.store.Create()
	var st view.State
	s.Do(func(e *engine.Engine) { st = view.Build(e) })
	logger.HTTP.Printf("created session %v", s.ID)
	writeJSON(w, http.StatusCreated, model.SessionResponse{Id: s.ID.String(), State: st})
}

// withSession resolves {id} and runs f against that session's engine. f
// returns a status and message when the request cannot be applied.
func (a *api) withSession(f func(e *engine.Engine, r *http.Request) (int, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(mux.Vars(r)["id"])
		if err != nil {
			writeError(w, http.StatusNotFound, "no such session")
			return
		}
		s, ok := a.store.Get(id)
		if !ok {
			writeError(w, http.StatusNotFound, "no such session")
			return
		}

		var status int
		var msg string
		var st view.State
		s.Do(func(e *engine.Engine) {
			status, msg = f(e, r)
			st = view.Build(e)
		})
		if status != http.StatusOK {
			writeError(w, status, msg)
			return
		}
		writeJSON(w, http.StatusOK, model.SessionResponse{Id: s.ID.String(), State: st})
	}
}

func getState(e *engine.Engine, r *http.Request) (int, string) {
	return http.StatusOK, ""
}

func toggle(e *engine.Engine, r *http.Request) (int, string) {
	pc, err := pitch.Parse(mux.Vars(r)["note"])
	if err != nil {
		return http.StatusBadRequest, err.Error()
	}
	e.OnPitchClassActivated(pc)
	return http.StatusOK, ""
}

func setSelection(e *engine.Engine, r *http.Request) (int, string) {
	var body model.SelectionRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return http.StatusBadRequest, "Could not read request body: " + err.Error()
	}
	e.RequestSetAll(pitch.NewSet(body.Notes...))
	return http.StatusOK, ""
}

func clearSelection(e *engine.Engine, r *http.Request) (int, string) {
	e.OnResetRequested()
	return http.StatusOK, ""
}

func chooseScale(e *engine.Engine, r *http.Request) (int, string) {
	name := mux.Vars(r)["name"]
	s, ok := e.Catalog().Lookup(name)
	if !ok {
		return http.StatusNotFound, "no scale named " + name
	}
	e.OnScaleChosen(s)
	return http.StatusOK, ""
}

func (a *api) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil || !a.store.Delete(id) {
		writeError(w, http.StatusNotFound, "no such session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.HTTP.Printf("%s %s %v", r.Method, r.URL.Path, time.Since(start))
	})
}

func NewRouter(store *session.Store, catalog scale.Catalog) http.Handler {
	a := &api{catalog: catalog, store: store}

	router := mux.NewRouter().StrictSlash(true)
	router.Use(logRequests)
	router.HandleFunc("/scales", a.handleCatalog).Methods("GET")
	router.HandleFunc("/match", a.handleMatch).Methods("GET")
	router.HandleFunc("/sessions", a.handleCreateSession).Methods("POST")
	router.HandleFunc("/sessions/{id}", a.withSession(getState)).Methods("GET")
	router.HandleFunc("/sessions/{id}", a.handleDeleteSession).Methods("DELETE")
	router.HandleFunc("/sessions/{id}/toggle/{note}", a.withSession(toggle)).Methods("POST")
	router.HandleFunc("/sessions/{id}/selection", a.withSession(setSelection)).Methods("PUT")
	router.HandleFunc("/sessions/{id}/selection", a.withSession(clearSelection)).Methods("DELETE")
	router.HandleFunc("/sessions/{id}/scales/{name}", a.withSession(chooseScale)).Methods("POST")

	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}).Handler(router)
}

func serve(addr string, ttl time.Duration) error {
	catalog := scale.Build()
	store := session.NewStore(catalog, ttl)

	stop := make(chan struct{})
	defer close(stop)
	go store.SweepEvery(time.Minute, stop, func(removed int) {
		logger.HTTP.Printf("dropped %d idle sessions", removed)
	})

	logger.HTTP.Printf("listening on %v", addr)
	return http.ListenAndServe(addr, NewRouter(store, catalog))
}
