package console

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  512,
	WriteBufferSize: 512,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Config struct {
	Address  string
	CertPath string
	KeyPath  string
}

type MessageIn struct {
	Query string `json:"query"`
	Id    int    `json:"id"`
	Type  string `json:"type"`
}

type MessageOut struct {
	Data  any    `json:"data"`
	Id    int    `json:"id"`
	Type  string `json:"type"`
	Error string `json:"error,omitempty"`
}

// NewMessage builds the reply for data after its query has run.
func NewMessage(app *App, data MessageIn, err error) MessageOut {
	msg := MessageOut{Id: data.Id, Type: data.Type}
	if msg.Type == "" {
		msg.Type = "vector"
	}
	switch msg.Type {
	case "vector":
		msg.Data = app.Vector()
	case "length":
		msg.Data = app.Vector().Len()
	default:
		err = errors.Join(err, fmt.Errorf("unknown message type %q", data.Type))
	}
	if err != nil {
		msg.Error = err.Error()
	}
	return msg
}

// StartWebsocket serves /ws on cfg.Address. TLS is used when both a
// certificate and a key are configured.
func StartWebsocket(app *App, cfg Config) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", wsHandler(app))
	srv := &http.Server{Addr: cfg.Address, Handler: mux}

	log.Printf("websocket listening on %s", cfg.Address)
	if cfg.CertPath != "" && cfg.KeyPath != "" {
		return srv.ListenAndServeTLS(expandHome(cfg.CertPath), expandHome(cfg.KeyPath))
	}
	return srv.ListenAndServe()
}

func echo(conn *websocket.Conn, app *App) {
	defer func() { // cleanup
		conn.Close()
		app.addConn(-1)
		app.UpdateTitle()
	}()

	app.addConn(1)
	app.UpdateTitle()

	for {
		var data MessageIn
		if err := conn.ReadJSON(&data); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Println(err)
			}
			break
		}

		var err error
		if data.Query != "" {
			err = app.Process(data.Query)
			if errors.Is(err, ErrQuit) {
				err = errors.New("quit is not allowed over websocket")
			}
		}

		if err := conn.WriteJSON(NewMessage(app, data, err)); err != nil {
			log.Println(err)
			break
		}
	}
}

type HTTPHandler func(w http.ResponseWriter, r *http.Request)

func wsHandler(app *App) HTTPHandler {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println(err)
			return
		}
		go echo(conn, app)
	}
}
