package main

import (
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/trytobebee/snakegrow/pkg/config"
	"github.com/trytobebee/snakegrow/pkg/sim"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// SimServer holds per-connection simulation state
type SimServer struct {
	mu        sync.Mutex
	simulator *sim.Simulator
	apple     sim.Apple
	pending   int // apples left in a server-driven run
	sessionID string
}

// SimConfig is sent to the client on connect
type SimConfig struct {
	SessionID     string `json:"sessionId"`
	InitialLength int    `json:"initialLength"`
	InitialGirth  int    `json:"initialGirth"`
	LengthGain    int    `json:"lengthGain"`
	GirthGain     int    `json:"girthGain"`
	PaletteSize   int    `json:"paletteSize"`
	TickMS        int    `json:"tickMs"`
}

type ServerMessage struct {
	Type   string          `json:"type"`
	Config *SimConfig      `json:"config,omitempty"`
	State  *sim.SnakeState `json:"state,omitempty"`
	Step   int             `json:"step,omitempty"`
	Error  string          `json:"error,omitempty"`
}

type ClientMessage struct {
	Action     string `json:"action"`
	Apples     int    `json:"apples,omitempty"`
	LengthGain int    `json:"lengthGain,omitempty"`
	GirthGain  int    `json:"girthGain,omitempty"`
}

func NewSimServer() *SimServer {
	return &SimServer{
		simulator: sim.NewSimulator(sim.NewSnake()),
		apple:     sim.Apple{LengthGain: config.DefaultLengthGain, GirthGain: config.DefaultGirthGain},
		sessionID: uuid.NewString(),
	}
}

func (ss *SimServer) getConfig() SimConfig {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return SimConfig{
		SessionID:     ss.sessionID,
		InitialLength: config.InitialLength,
		InitialGirth:  config.InitialGirth,
		LengthGain:    ss.apple.LengthGain,
		GirthGain:     ss.apple.GirthGain,
		PaletteSize:   sim.PaletteSize,
		TickMS:        int(config.ServerTick.Milliseconds()),
	}
}

// handleAction applies a client action and returns the message to send back,
// or nil when the action produces no immediate reply
func (ss *SimServer) handleAction(msg ClientMessage) *ServerMessage {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	switch msg.Action {
	case "feed":
		rec, err := ss.simulator.Feed(ss.apple)
		if err != nil {
			return &ServerMessage{Type: "error", Error: err.Error()}
		}
		return &ServerMessage{Type: "state", State: &rec.Snake, Step: rec.Step}

	case "run":
		apples := msg.Apples
		if apples < 0 {
			return &ServerMessage{Type: "error", Error: sim.ErrNegativeApples.Error()}
		}
		if apples > config.MaxRunApples {
			apples = config.MaxRunApples
		}
		apple := ss.apple
		if msg.LengthGain != 0 || msg.GirthGain != 0 {
			apple = sim.Apple{LengthGain: msg.LengthGain, GirthGain: msg.GirthGain}
		}
		if err := apple.Validate(); err != nil {
			return &ServerMessage{Type: "error", Error: err.Error()}
		}
		ss.apple = apple
		ss.pending = apples
		return nil

	case "reset":
		ss.simulator.Reset(sim.NewSnake())
		ss.pending = 0
		state := ss.simulator.Snake.State()
		return &ServerMessage{Type: "state", State: &state, Step: 0}
	}

	return &ServerMessage{Type: "error", Error: "unknown action: " + msg.Action}
}

// tick feeds one pending apple, if any
func (ss *SimServer) tick() *ServerMessage {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if ss.pending <= 0 {
		return nil
	}
	ss.pending--
	rec, err := ss.simulator.Feed(ss.apple)
	if err != nil {
		ss.pending = 0
		return &ServerMessage{Type: "error", Error: err.Error()}
	}
	return &ServerMessage{Type: "state", State: &rec.Snake, Step: rec.Step}
}

func handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	defer conn.Close()

	log.Println("New WebSocket connection from:", r.RemoteAddr)

	ss := NewSimServer()

	// Mutex to protect concurrent writes to the WebSocket connection
	var writeMu sync.Mutex
	safeWriteJSON := func(v interface{}) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		return conn.WriteJSON(v)
	}

	// Send initial config and state
	simConfig := ss.getConfig()
	safeWriteJSON(ServerMessage{Type: "config", Config: &simConfig})

	initialState := ss.simulator.Snake.State()
	safeWriteJSON(ServerMessage{Type: "state", State: &initialState, Step: 0})

	// Input handling goroutine. Closing done releases the run loop below,
	// otherwise an idle connection would keep this handler alive forever.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var msg ClientMessage
			if err := conn.ReadJSON(&msg); err != nil {
				log.Println("Read error:", err)
				return
			}
			if reply := ss.handleAction(msg); reply != nil {
				safeWriteJSON(*reply)
			}
		}
	}()

	// Server-driven run loop
	ticker := time.NewTicker(config.ServerTick)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			reply := ss.tick()
			if reply == nil {
				continue
			}
			if err := safeWriteJSON(*reply); err != nil {
				log.Println("Write error:", err)
				return
			}
		}
	}
}

func handleIndex(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, indexPage)
}

const indexPage = `<!DOCTYPE html>
<html>
<head>
    <title>Snakegrow</title>
    <style>
        body { font-family: monospace; background: #1a202c; color: #fff; padding: 2rem; }
        h1 { color: #48bb78; }
        #log { background: #2d3748; padding: 1rem; border-radius: 8px; min-height: 12rem; }
        button { margin-right: 0.5rem; }
    </style>
</head>
<body>
    <h1>🐍 Snakegrow Live</h1>
    <p>
        <button onclick="send({action:'feed'})">Feed one apple</button>
        <button onclick="send({action:'run', apples:10})">Run 10 apples</button>
        <button onclick="send({action:'reset'})">Reset</button>
    </p>
    <div id="log"></div>
    <script>
        const log = document.getElementById('log');
        const ws = new WebSocket('ws://' + location.host + '/ws');
        const send = (m) => ws.send(JSON.stringify(m));
        ws.onmessage = (e) => {
            const msg = JSON.parse(e.data);
            if (msg.type === 'state') {
                const s = msg.state;
                log.innerHTML += '🍎 ' + msg.step + ': length ' + s.length +
                    ', girth ' + s.girth + ', color ' + s.color + '<br>';
            } else if (msg.type === 'error') {
                log.innerHTML += '⚠️ ' + msg.error + '<br>';
            }
            log.scrollTop = log.scrollHeight;
        };
    </script>
</body>
</html>`

func main() {
	http.HandleFunc("/", handleIndex)
	http.HandleFunc("/ws", handleWebSocket)

	fmt.Printf("🚀 Snakegrow Web Server starting on http://localhost%s\n", config.ServerAddr)
	log.Fatal(http.ListenAndServe(config.ServerAddr, nil))
}
