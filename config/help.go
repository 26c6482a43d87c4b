package config

import (
	"flag"
	"fmt"
)

const HelpMessage = `U BAR backend

Usage:
  ubar -mode=<service> [-config-path=config.yaml]
  ubar -help

Services:
  booking-service   ride booking flow, live driver position, concierge chat (port 3000)
  driver-service    driver portal sessions, online status, GPS telemetry   (port 3001)
  content-service   passes, events and the podcast feed                     (port 3002)

Configuration is read from .env, then the YAML file (values may use ${VAR:-default}),
then the environment. Nested YAML keys map to SECTION_KEY variables, e.g.
store.backend -> STORE_BACKEND.
`

func PrintHelp() {
	if HelpMessage != "" {
		fmt.Printf("%s", HelpMessage)
	} else {
		flag.Usage()
	}
}
