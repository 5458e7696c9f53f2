// Package config provides configuration parsing for the minivdom CLI.
//
// The configuration is stored in minivdom.json (or minivdom.yaml) in the
// working directory. This package handles loading, saving, and validating
// configuration.
//
// # Configuration File Structure
//
//	{
//	  "serve": {
//	    "host": "localhost",
//	    "port": 3000
//	  },
//	  "log": {
//	    "level": "debug",
//	    "format": "text"
//	  },
//	  "panel": {
//	    "maxEntries": 50
//	  },
//	  "render": {
//	    "validate": true
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "minivdom"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Port:", cfg.Serve.Port)
package config
