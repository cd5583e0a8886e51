package lookupmock

import (
	"context"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/goccy/go-json"
)

// DefaultTitles are served when no titles are configured.
var DefaultTitles = []string{
	"The Shawshank Redemption",
	"The Godfather",
	"The Dark Knight",
	"Pulp Fiction",
	"Forrest Gump",
}

var labelPattern = regexp.MustCompile(`\?item \?label "((?:[^"\\]|\\.)*)"@en`)

var literalUnescaper = strings.NewReplacer(
	`\\`, `\`,
	`\"`, `"`,
	`\n`, "\n",
	`\r`, "\r",
	`\t`, "\t",
)

// MockLookupServer answers the film label query with canned SPARQL JSON,
// so the form can run without the public endpoint.
type MockLookupServer struct {
	server *http.Server
	mu     sync.RWMutex
	titles []string
}

func NewMockLookupServer(addr string, titles []string) *MockLookupServer {
	mux := http.NewServeMux()
	m := &MockLookupServer{
		server: &http.Server{
			Addr:    addr,
			Handler: mux,
		},
		titles: titles,
	}

	mux.HandleFunc("/sparql", m.handleQuery)
	mux.HandleFunc("/titles", m.handleTitles)
	return m
}

func (m *MockLookupServer) Handler() http.Handler {
	return m.server.Handler
}

func (m *MockLookupServer) Start() error {
	log.Printf("Mock lookup server starting on %s", m.server.Addr)
	return m.server.ListenAndServe()
}

func (m *MockLookupServer) Stop(ctx context.Context) error {
	return m.server.Shutdown(ctx)
}

type literal struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type binding struct {
	Item      literal `json:"item"`
	ItemLabel literal `json:"itemLabel"`
}

type response struct {
	Head struct {
		Vars []string `json:"vars"`
	} `json:"head"`
	Results struct {
		Bindings []binding `json:"bindings"`
	} `json:"results"`
}

func (m *MockLookupServer) handleQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	match := labelPattern.FindStringSubmatch(r.URL.Query().Get("query"))
	if match == nil {
		http.Error(w, "Unsupported query", http.StatusBadRequest)
		return
	}
	label := literalUnescaper.Replace(match[1])

	var resp response
	resp.Head.Vars = []string{"item", "itemLabel", "itemDescription"}
	resp.Results.Bindings = []binding{}

	m.mu.RLock()
	for i, title := range m.titles {
		if title == label {
			resp.Results.Bindings = append(resp.Results.Bindings, binding{
				Item:      literal{Type: "uri", Value: "http://www.wikidata.org/entity/mock" + strconv.Itoa(i)},
				ItemLabel: literal{Type: "literal", Value: title},
			})
		}
	}
	m.mu.RUnlock()

	w.Header().Set("Content-Type", "application/sparql-results+json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}

// handleTitles lists titles on GET and appends a JSON list of titles on POST.
func (m *MockLookupServer) handleTitles(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		m.mu.RLock()
		defer m.mu.RUnlock()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(m.titles)
	case http.MethodPost:
		var titles []string
		if err := json.NewDecoder(r.Body).Decode(&titles); err != nil {
			http.Error(w, "Expected a JSON list of titles", http.StatusBadRequest)
			return
		}
		m.mu.Lock()
		m.titles = append(m.titles, titles...)
		m.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
