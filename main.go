package main

import "os"
import "fmt"
import "log"
import "flag"
import "github.com/joho/godotenv"
import "github.com/gymadmin/api/server"
import "github.com/gymadmin/api/server/env"

func main() {
	addr := flag.String("address", "", "http address, overrides SERVER_ADDR")
	envFile := flag.String("env-file", ".env", "dotenv file loaded before reading configuration")
	flag.Parse()

	if e := godotenv.Load(*envFile); e != nil {
		log.Printf("no dotenv file loaded from '%s': %s", *envFile, e)
	}

	options := env.Load()

	if *addr != "" {
		options.Server.Addr = *addr
	}

	handler, e := server.New(options)

	if e != nil {
		fmt.Printf("unable to start http server: %s", e)
		os.Exit(1)
	}

	fmt.Printf("start server, binding to %s\n", options.Server.Addr)
	if e := handler.ListenAndServe(); e != nil {
		fmt.Printf("unable to start http server: %s", e)
		os.Exit(1)
	}

	handler.Close()
}
