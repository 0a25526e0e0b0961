package internal

import (
	"flag"
	"os"
	"strconv"
)

var c *config

const (
	RunAddress       = "RUN_ADDRESS"
	DatabaseURI      = "DATABASE_URI"
	StrictTotalCheck = "STRICT_TOTAL_CHECK"
)

const (
	defaultRunAddress  = "localhost:8080"
	defaultDatabaseURI = "" // empty means in-memory storage
)

type config struct {
	RunAddress       string
	DatabaseURI      string
	StrictTotalCheck bool
}

func NewConfig() *config {
	c = new(config)

	flag.StringVar(&c.RunAddress, "a", setEnvOrDefault(RunAddress, defaultRunAddress), "host to listen on")
	flag.StringVar(&c.DatabaseURI, "d", setEnvOrDefault(DatabaseURI, defaultDatabaseURI), "postgres connection path, empty for in-memory storage")
	flag.BoolVar(&c.StrictTotalCheck, "s", boolEnvOrDefault(StrictTotalCheck, false), "reject receipts whose total does not equal the sum of item prices")

	flag.Parse()
	return c
}

func setEnvOrDefault(env, def string) string {
	res, e := os.LookupEnv(env)
	if !e {
		res = def
	}
	return res
}

func boolEnvOrDefault(env string, def bool) bool {
	res, e := os.LookupEnv(env)
	if !e {
		return def
	}

	b, err := strconv.ParseBool(res)
	if err != nil {
		return def
	}
	return b
}
