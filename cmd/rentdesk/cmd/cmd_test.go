package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"

	"rentdesk-srv/internal/dashboard"
	"rentdesk-srv/pkg/paginator"
	"rentdesk-srv/pkg/rentapi"
	"rentdesk-srv/pkg/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const totalProperties = 23

type fakeAPI struct {
	mu       sync.Mutex
	requests []url.Values
}

func (f *fakeAPI) queries() []url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]url.Values(nil), f.requests...)
}

func (f *fakeAPI) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(rentapi.PathProperties, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		f.mu.Lock()
		f.requests = append(f.requests, q)
		f.mu.Unlock()

		page, _ := strconv.Atoi(q.Get("page"))
		size, _ := strconv.Atoi(q.Get("size"))
		total := totalProperties
		if q.Get("search") == "zzz" {
			total = 0
		}

		items := []rentapi.Property{}
		for i := page * size; i < (page+1)*size && i < total; i++ {
			items = append(items, rentapi.Property{
				ID:         fmt.Sprintf("p%d", i+1),
				Name:       fmt.Sprintf("Flat %d", i+1),
				Address:    "12 Admiralty Way",
				Location:   &rentapi.Ref{ID: "l1", Name: "Lekki"},
				Bedrooms:   2,
				RentAmount: 150000000,
				Status:     "occupied",
			})
		}
		totalPages := 0
		if size > 0 {
			totalPages = (total + size - 1) / size
		}
		writeEnvelope(t, w, http.StatusOK, "", paginator.Page[rentapi.Property]{
			Data:        items,
			TotalItems:  total,
			TotalPages:  totalPages,
			CurrentPage: page,
			PageSize:    size,
		})
	})
	mux.HandleFunc(rentapi.PathLogin, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body.Password != "secret" {
			writeEnvelope(t, w, http.StatusUnauthorized, "Invalid email or password", nil)
			return
		}
		writeEnvelope(t, w, http.StatusOK, "", rentapi.Session{
			Token: "tok-123",
			User:  rentapi.User{ID: "u1", Email: body.Email, Role: "admin", FirstName: "Ada", LastName: "Obi"},
		})
	})
	return mux
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, code int, message string, data any) {
	status := response.StatusSuccess
	if code >= http.StatusBadRequest {
		status = "error"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
		"statusCode": code,
		"status":     status,
		"message":    message,
		"data":       data,
	}))
}

func run(t *testing.T, api *fakeAPI, stdin string, args ...string) (string, error) {
	t.Helper()
	srv := httptest.NewServer(api.handler(t))
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	root := NewRootCommand(strings.NewReader(stdin), &out)
	root.SetArgs(append(args, "--api-url", srv.URL, "--debounce=-1ns"))
	err := root.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	api := &fakeAPI{}
	out, err := run(t, api, "", "list", "properties", "--page", "2", "--filter", "status=occupied", "--filter", "location=all")
	require.NoError(t, err)

	reqs := api.queries()
	require.Len(t, reqs, 1)
	assert.Equal(t, "1", reqs[0].Get("page"))
	assert.Equal(t, "10", reqs[0].Get("size"))
	assert.Equal(t, "occupied", reqs[0].Get("status"))
	assert.False(t, reqs[0].Has("location"))

	assert.Contains(t, out, "Properties  /properties?page=2&status=occupied")
	assert.Regexp(t, `(?m)^11\s+Flat 11\s+12 Admiralty Way\s+Lekki\s+2\s`, out)
	assert.Regexp(t, `(?m)^20\s+Flat 20\s`, out)
	assert.NotContains(t, out, "Flat 21")
	assert.Contains(t, out, "Page 2 of 3, 23 items")
}

func TestList_PageBeyondLastIsNotClamped(t *testing.T) {
	api := &fakeAPI{}
	out, err := run(t, api, "", "list", "properties", "--query", "page=7")
	require.NoError(t, err)

	assert.Equal(t, "6", api.queries()[0].Get("page"))
	assert.Contains(t, out, "Page 7 of 3, 23 items")
}

func TestList_EmptyResultHidesPagination(t *testing.T) {
	out, err := run(t, &fakeAPI{}, "", "list", "properties", "--search", "zzz")
	require.NoError(t, err)

	assert.Contains(t, out, dashboard.MessageNoMatches)
	assert.NotContains(t, out, "Page ")
}

func TestList_InvalidInput(t *testing.T) {
	tests := map[string]struct {
		args []string
		want string
	}{
		"unknown table":  {args: []string{"list", "houses"}, want: "unknown table"},
		"unknown filter": {args: []string{"list", "locations", "--filter", "status=paid"}, want: `no filter "status"`},
		"bad filter":     {args: []string{"list", "properties", "--filter", "status"}, want: "want key=value"},
		"bad value":      {args: []string{"list", "properties", "--filter", "status=bogus"}, want: "filter value not allowed"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, &fakeAPI{}, "", tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLogin(t *testing.T) {
	out, err := run(t, &fakeAPI{}, "secret\n", "login", "--email", "ada@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in as Ada Obi (admin)")
	assert.Contains(t, out, "export "+EnvToken+"=tok-123")

	_, err = run(t, &fakeAPI{}, "", "login", "--email", "ada@example.com", "--password", "wrong")
	require.Error(t, err)
	assert.Equal(t, "login failed: Invalid email or password", err.Error())
}

func TestBrowse(t *testing.T) {
	api := &fakeAPI{}
	stdin := strings.Join([]string{
		":next",
		":filter status=occupied",
		":filter status=sold",
		":back",
		":url",
		"Flat",
		":url",
		":bogus",
		":quit",
	}, "\n") + "\n"

	out, err := run(t, api, stdin, "browse", "properties")
	require.NoError(t, err)

	assert.Contains(t, out, "Page 1 of 3, 23 items")
	assert.Contains(t, out, "Page 2 of 3, 23 items")
	assert.Contains(t, out, "Properties  /properties?status=occupied")
	assert.Contains(t, out, "! table: filter value not allowed")
	assert.Contains(t, out, "> /properties?page=2\n")
	assert.Contains(t, out, "> /properties?search=Flat\n")
	assert.Contains(t, out, "! unknown command, try :help")

	reqs := api.queries()
	require.NotEmpty(t, reqs)
	assert.Equal(t, "0", reqs[0].Get("page"))
	assert.Equal(t, "Flat", reqs[len(reqs)-1].Get("search"))
}

func TestBrowseBackKeepsPageSize(t *testing.T) {
	api := &fakeAPI{}
	stdin := strings.Join([]string{":size 5", ":next", ":back", ":quit"}, "\n") + "\n"

	out, err := run(t, api, stdin, "browse", "properties")
	require.NoError(t, err)

	assert.Contains(t, out, "Page 2 of 5, 23 items")
	last := out[strings.LastIndex(out, "Page "):]
	assert.True(t, strings.HasPrefix(last, "Page 1 of 5, 23 items"), last)

	firstPages := 0
	for _, q := range api.queries() {
		if q.Get("size") == "5" && q.Get("page") == "0" {
			firstPages++
		}
	}
	assert.Equal(t, 2, firstPages)
}

func TestTables(t *testing.T) {
	out, err := run(t, &fakeAPI{}, "", "tables")
	require.NoError(t, err)
	for _, name := range tableNames() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "sort=newest|oldest|amount_asc|amount_desc")
}
