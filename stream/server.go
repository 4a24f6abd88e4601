package stream

import (
	"emipcpo/internal"
	"emipcpo/internal/config"
	"emipcpo/utility"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

const (
	wsEndpoint = "/log/stream"
)

// Server pushes call log messages to connected websocket clients. It
// implements internal.MessageService so the logger can treat it as one more
// sink.
type Server struct {
	conf       *config.Config
	httpServer *http.Server
	upgrader   websocket.Upgrader
	logger     internal.LogHandler

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewServer(conf *config.Config) *Server {
	server := Server{
		conf:     conf,
		upgrader: websocket.Upgrader{},
		clients:  make(map[*websocket.Conn]bool),
	}
	router := httprouter.New()
	server.Register(router)
	server.httpServer = &http.Server{
		Handler: router,
	}
	return &server
}

func (s *Server) SetLogger(logger internal.LogHandler) {
	s.logger = logger
}

func (s *Server) Register(router *httprouter.Router) {
	router.GET(wsEndpoint, s.handleWsRequest)
}

func (s *Server) handleWsRequest(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if s.logger != nil {
		s.logger.Debug(fmt.Sprintf("stream connection initiated from remote %s", r.RemoteAddr))
	}

	s.upgrader.CheckOrigin = func(r *http.Request) bool {
		return true
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("stream upgrade failed: ", err)
		}
		return
	}

	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()

	go s.connectionReader(conn)
}

// connectionReader drains inbound frames until the peer leaves; the stream
// is one-way so the payloads are discarded.
func (s *Server) connectionReader(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if s.logger != nil {
				if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					s.logger.Debug("stream client leaving session")
				} else {
					s.logger.Debug(fmt.Sprintf("stream client closing session %s", err))
				}
			}
			s.drop(conn)
			return
		}
	}
}

func (s *Server) drop(conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
	_ = conn.Close()
}

// Send broadcasts one message to every connected client.
func (s *Server) Send(message internal.Message) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}
	s.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.clients))
	for conn := range s.clients {
		conns = append(conns, conn)
	}
	s.mu.Unlock()
	for _, conn := range conns {
		if err = conn.WriteMessage(websocket.TextMessage, data); err != nil {
			s.drop(conn)
		}
	}
	return nil
}

func (s *Server) Start() error {
	if s.conf == nil {
		return utility.Err("configuration not loaded")
	}
	serverAddress := fmt.Sprintf("%s:%s", s.conf.Listen.BindIP, s.conf.Listen.Port)
	if s.logger != nil {
		s.logger.Debug(fmt.Sprintf("starting stream server on %s", serverAddress))
	}
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}
	if s.conf.Listen.TLS {
		err = s.httpServer.ServeTLS(listener, s.conf.Listen.CertFile, s.conf.Listen.KeyFile)
	} else {
		err = s.httpServer.Serve(listener)
	}
	return err
}
