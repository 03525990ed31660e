package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/virel-project/virel-runtime/config"
	"github.com/virel-project/virel-runtime/logger"
	"github.com/virel-project/virel-runtime/node"
	"github.com/virel-project/virel-runtime/rpc/noderpc"
	"github.com/virel-project/virel-runtime/rpc/rpcserver"
	"github.com/virel-project/virel-runtime/runtime"
	"github.com/virel-project/virel-runtime/store"
)

var Log = logger.New()

var defaultDataDir string

func init() {
	runtime.Log = Log
	store.Log = Log
	node.Log = Log
	rpcserver.Log = Log

	home, err := os.UserHomeDir()
	if err != nil {
		Log.Fatal(err)
	}

	defaultDataDir = filepath.Join(home, config.NAME+"-"+config.NETWORK_NAME)
}

func main() {
	version := flag.Bool("version", false, "prints version and exits")
	log_level := flag.Uint("log-level", config.DEFAULT_LOG_LEVEL, "sets the log level")
	data_dir := flag.String("data-dir", defaultDataDir, "sets the data directory which contains the state database")
	db_backend := flag.String("db", config.DEFAULT_DB, "state database backend: bolt or lmdb")
	in_memory := flag.Bool("in-memory", false, "if set, state is not persisted")
	rpc_bind_port := flag.Uint("rpc-bind-port", config.RPC_BIND_PORT, "starts the JSON-RPC server on this port, 0 disables it")
	public_rpc := flag.Bool("public-rpc", false, "binds the RPC server on 0.0.0.0 and rejects non-local origins")
	rpc_auth := flag.String("rpc-auth", "", "username:password required by the RPC server")
	non_interactive := flag.Bool("non-interactive", false, "if set, the node will not process the stdinput. Useful for running as a service.")
	demo := flag.Bool("demo", false, "runs the demo scenarios on in-memory state and exits")

	flag.Parse()

	if *version {
		fmt.Printf("%s v%v.%v.%v\n", config.NAME, config.VERSION_MAJOR, config.VERSION_MINOR, config.VERSION_PATCH)
		os.Exit(0)
	}

	Log.SetLogLevel(uint8(*log_level))

	Log.Info("Starting", config.NETWORK_NAME, "runtime")
	Log.Infof("Version: %d.%d.%d", config.VERSION_MAJOR, config.VERSION_MINOR, config.VERSION_PATCH)

	if *demo {
		err := runDemo()
		if err != nil {
			Log.Fatal("demo failed:", err)
		}
		Log.Info("Demo scenarios passed")
		return
	}

	var st *store.Store
	if !*in_memory {
		err := os.MkdirAll(*data_dir, 0o700)
		if err != nil {
			Log.Fatal("failed to create data dir:", err)
		}

		db, err := store.OpenDB(*db_backend, *data_dir)
		if err != nil {
			Log.Fatal(err)
		}
		st = store.New(db)
	}

	n, err := node.New(st, runtime.DefaultGenesis())
	if err != nil {
		Log.Fatal(err)
	}
	defer n.Close()

	if *rpc_bind_port != 0 {
		bind_ip := "127.0.0.1"
		if *public_rpc {
			bind_ip = "0.0.0.0"
		}
		startRpc(n, fmt.Sprintf("%s:%d", bind_ip, *rpc_bind_port), *public_rpc, *rpc_auth)
	}

	if *non_interactive {
		select {}
	}

	prompts(n)
}

func startRpc(n *node.Node, bind string, restricted bool, auth string) {
	ratelimitCount := 100_000 // max 100k requests per minute for private RPC
	if restricted {
		ratelimitCount = 5_000
	}

	rs := rpcserver.New(rpcserver.Config{
		Restricted:     restricted,
		Authentication: auth,
		RateLimit:      ratelimitCount,
	})
	noderpc.Register(rs, n)
	rs.Start(bind)

	Log.Info("RPC server listening on", bind)
}
