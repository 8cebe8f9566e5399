package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/jsphweid/scalefinder/cmd"
	"github.com/jsphweid/scalefinder/logger"
	"github.com/jsphweid/scalefinder/model"
	"github.com/jsphweid/scalefinder/scale"
	"github.com/jsphweid/scalefinder/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var router http.Handler

func TestMain(m *testing.M) {
	logger.Stream = io.Discard
	catalog := scale.Build()
	router = cmd.NewRouter(session.NewStore(catalog, time.Hour), catalog)

	os.Exit(m.Run())
}

func do(t *testing.T, method, target string, body interface{}) *http.Response {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, r)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Result()
}

func decode[A any](t *testing.T, resp *http.Response) A {
	var res A
	respBody, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(respBody, &res), string(respBody))
	return res
}

func createSession(t *testing.T) model.SessionResponse {
	resp := do(t, http.MethodPost, "/sessions", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[model.SessionResponse](t, resp)
}

func TestCreateSessionStartsUnfiltered(t *testing.T) {
	s := createSession(t)

	assert := assert.New(t)
	assert.NotEmpty(s.Id)
	assert.False(s.State.Filtered)
	assert.Empty(s.State.Selection)
	assert.Len(s.State.Majors, 12)
	assert.Len(s.State.Minors, 12)
}

func TestToggleCEG(t *testing.T) {
	s := createSession(t)
	var last model.SessionResponse
	for _, note := range []string{"C", "E", "7"} {
		resp := do(t, http.MethodPost, "/sessions/"+s.Id+"/toggle/"+note, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		last = decode[model.SessionResponse](t, resp)
	}

	assert := assert.New(t)
	assert.Equal([]int{0, 4, 7}, last.State.Selection)
	assert.True(last.State.Filtered)
	var majors, minors []string
	for _, b := range last.State.Majors {
		majors = append(majors, b.Name)
	}
	for _, b := range last.State.Minors {
		minors = append(minors, b.Name)
	}
	assert.Equal([]string{"C", "F", "G"}, majors)
	assert.Equal([]string{"Dm", "Em", "Am"}, minors)
}

func TestChooseScaleThenClear(t *testing.T) {
	s := createSession(t)

	resp := do(t, http.MethodPost, "/sessions/"+s.Id+"/scales/F%23m", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	st := decode[model.SessionResponse](t, resp).State
	assert.Equal(t, []int{1, 2, 4, 6, 8, 9, 11}, st.Selection)
	require.Len(t, st.Minors, 1)
	assert.Equal(t, "F#m", st.Minors[0].Name)
	require.Len(t, st.Majors, 1)
	assert.Equal(t, "A", st.Majors[0].Name)

	resp = do(t, http.MethodDelete, "/sessions/"+s.Id+"/selection", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	st = decode[model.SessionResponse](t, resp).State
	assert.False(t, st.Filtered)
	assert.Len(t, st.Majors, 12)
}

func TestPutSelectionAcceptsNamesAndNumbers(t *testing.T) {
	s := createSession(t)
	resp := do(t, http.MethodPut, "/sessions/"+s.Id+"/selection", map[string]interface{}{
		"notes": []interface{}{"C", 1, "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", 11},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	st := decode[model.SessionResponse](t, resp).State
	assert.True(t, st.Filtered)
	assert.Empty(t, st.Majors)
	assert.Empty(t, st.Minors)
}

func TestBadInput(t *testing.T) {
	s := createSession(t)

	resp := do(t, http.MethodPost, "/sessions/"+s.Id+"/toggle/H", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, decode[model.ErrorResponse](t, resp).Error)

	resp = do(t, http.MethodPut, "/sessions/"+s.Id+"/selection", map[string]interface{}{"notes": []int{12}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, http.MethodPost, "/sessions/"+s.Id+"/scales/Hm", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, http.MethodGet, "/sessions/not-a-uuid", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteSession(t *testing.T) {
	s := createSession(t)
	resp := do(t, http.MethodDelete, "/sessions/"+s.Id, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, http.MethodGet, "/sessions/"+s.Id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStatelessMatch(t *testing.T) {
	resp := do(t, http.MethodGet, "/match?notes=C,E&notes=G", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	m := decode[model.MatchResponse](t, resp)
	assert.Equal(t, []int{0, 4, 7}, m.Selection)
	assert.Len(t, m.Majors, 3)

	resp = do(t, http.MethodGet, "/match", nil)
	m = decode[model.MatchResponse](t, resp)
	assert.False(t, m.Filtered)
	assert.Len(t, m.Majors, 12)

	resp = do(t, http.MethodGet, "/match?notes=X", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCatalog(t *testing.T) {
	resp := do(t, http.MethodGet, "/scales", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	c := decode[model.CatalogResponse](t, resp)
	assert.Len(t, c.Scales, scale.CatalogSize)
	assert.Equal(t, "C (Major)", c.Scales[0].Label)
	assert.Equal(t, "Cm (Minor)", c.Scales[1].Label)
}
