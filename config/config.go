package config

const NAME = "virel-runtime"

const VERSION_MAJOR = 0
const VERSION_MINOR = 1
const VERSION_PATCH = 0

// Default log level of the node. 0 disables logging, 3 prints every dispatch.
const DEFAULT_LOG_LEVEL = 1

// Storage backend used when none is given on the command line: "bolt" or "lmdb".
const DEFAULT_DB = "bolt"

const DB_FILE_NAME = NAME + ".db"

const RPC_BIND_PORT = 6411
