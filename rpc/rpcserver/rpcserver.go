package rpcserver

import (
	"net/http"

	"github.com/virel-project/virel-runtime/util/ratelimit"
)

type Server struct {
	handlers map[string]Handler
	config   Config

	limit *ratelimit.Limit
}
type Handler = func(c *Context)

type Config struct {
	// When true, the RPC server rejects requests carrying a non-local Origin.
	Restricted bool

	// The username:password used in Basic Auth. Leave blank to disable authentication.
	Authentication string

	// The maximum number of requests per minute from a single IP address. Default is 500.
	RateLimit int
}

var _ http.Handler = &Server{}

func New(config Config) *Server {
	if config.RateLimit == 0 {
		config.RateLimit = 500
	}

	return &Server{
		handlers: make(map[string]Handler),
		config:   config,
		limit:    ratelimit.New(config.RateLimit),
	}
}

// Start serves s on bind in a new goroutine.
func (s *Server) Start(bind string) *http.Server {
	httpSrv := &http.Server{
		Addr:    bind,
		Handler: s,
	}
	go func() {
		err := httpSrv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			Log.Err("rpc server stopped:", err)
		}
	}()
	return httpSrv
}

func (s *Server) Handle(method string, f Handler) {
	s.handlers[method] = f
}

func (s *Server) ServeHTTP(res http.ResponseWriter, req *http.Request) {
	err := s.handler(res, req)
	if err != nil {
		Log.Debug("rpc request from", req.RemoteAddr, "failed:", err)
	}
}
