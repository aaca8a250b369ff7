// Package monitoring serves the state of registered lists over HTTP.
package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"
)

// Inspectable is a list that the monitor can show. Every *list.List
// satisfies it.
type Inspectable interface {
	Size() int
	String() string
}

// Monitor turns a set of lists into a server that can be inspected from a
// browser or with curl.
type Monitor struct {
	lock  sync.Mutex
	names []string
	lists map[string]Inspectable

	portNumber     int
	openBrowser    bool
	profileSeconds float64
}

// NewMonitor creates a new Monitor
func NewMonitor() *Monitor {
	return &Monitor{
		lists:          make(map[string]Inspectable),
		profileSeconds: 1,
	}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// WithBrowser sets whether StartServer opens the monitoring page in a
// browser.
func (m *Monitor) WithBrowser(open bool) *Monitor {
	m.openBrowser = open
	return m
}

// WithProfileDuration sets how long /api/profile samples the CPU.
func (m *Monitor) WithProfileDuration(d time.Duration) *Monitor {
	m.profileSeconds = d.Seconds()
	return m
}

// RegisterList registers a list to be monitored under a unique name.
func (m *Monitor) RegisterList(name string, l Inspectable) {
	m.lock.Lock()
	defer m.lock.Unlock()

	if _, found := m.lists[name]; found {
		log.Panicf("list %s is already registered", name)
	}

	m.names = append(m.names, name)
	m.lists[name] = l
}

// Router returns the handler that serves the monitoring API.
func (m *Monitor) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/lists", m.listLists).Methods(http.MethodGet)
	r.HandleFunc("/api/list/{name}", m.listContent).Methods(http.MethodGet)
	r.HandleFunc("/api/list/{name}/detail", m.listDetail).
		Methods(http.MethodGet)
	r.HandleFunc("/api/resource", m.listResources).Methods(http.MethodGet)
	r.HandleFunc("/api/profile", m.collectProfile).Methods(http.MethodGet)

	return r
}

// StartServer starts the monitor as a web server and returns its URL.
func (m *Monitor) StartServer() string {
	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)

	fmt.Fprintf(os.Stderr, "Monitoring lists with %s\n", url)

	handler := m.Router()

	go func() {
		err := http.Serve(listener, handler)
		dieOnErr(err)
	}()

	if m.openBrowser {
		err = browser.OpenURL(url + "/api/lists")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open browser: %v\n", err)
		}
	}

	return url
}

type listRsp struct {
	Name string `json:"name"`
	Size int    `json:"size"`
	Text string `json:"text,omitempty"`
}

func (m *Monitor) listLists(w http.ResponseWriter, _ *http.Request) {
	m.lock.Lock()
	rsp := make([]listRsp, 0, len(m.names))
	for _, name := range m.names {
		rsp = append(rsp, listRsp{Name: name, Size: m.lists[name].Size()})
	}
	m.lock.Unlock()

	writeJSON(w, rsp)
}

func (m *Monitor) listContent(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	l := m.findListOr404(w, name)
	if l == nil {
		return
	}

	writeJSON(w, listRsp{Name: name, Size: l.Size(), Text: l.String()})
}

func (m *Monitor) listDetail(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	l := m.findListOr404(w, name)
	if l == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(l)
	serializer.SetMaxDepth(1)

	field := r.URL.Query().Get("field")
	if field != "" {
		err := serializer.SetEntryPoint(strings.Split(field, "."))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintf(w, "Error: %s", err)

			return
		}
	}

	w.Header().Set("Content-Type", "application/json")

	err := serializer.Serialize(w)
	dieOnErr(err)
}

func (m *Monitor) findListOr404(
	w http.ResponseWriter,
	name string,
) Inspectable {
	m.lock.Lock()
	l := m.lists[name]
	m.lock.Unlock()

	if l == nil {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte("List not found"))
		dieOnErr(err)
	}

	return l
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	process, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := process.CPUPercent()
	dieOnErr(err)

	memorySize, err := process.MemoryInfo()
	dieOnErr(err)

	writeJSON(w, resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	})
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	if err != nil {
		w.WriteHeader(http.StatusConflict)
		fmt.Fprintf(w, "Error: %s", err)

		return
	}

	time.Sleep(time.Duration(m.profileSeconds * float64(time.Second)))

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	writeJSON(w, prof)
}

func writeJSON(w http.ResponseWriter, v any) {
	bytes, err := json.Marshal(v)
	dieOnErr(err)

	w.Header().Set("Content-Type", "application/json")

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
