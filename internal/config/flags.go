// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the process command line.
//
// Flags:
//
//	-a control API address in format [host]:[port]
//	-c/-config json file path with configs
//	-d state database DSN
//	-driver state database driver (sqlite3, postgres)
//	-b bookmarks file of the host browser profile
//	-kind remote backend (gist, repo)
//	-gist-id gist identifier
//	-owner, -repo, -branch, -path repository location
//	-interval auto-sync interval (e.g. "5m")
//	-request-timeout remote call timeout (e.g. "30s")
//	-device-id device identifier override
//	-write-back add remote-only bookmarks to the host file
//	-log-level, -log-file logging settings
//	-token-sign-key control API signing key
//
// The first positional argument is stored in [StructuredConfig.Command] and
// the rest in [StructuredConfig.CommandArgs].
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("client", flag.ContinueOnError)
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	cfg := &StructuredConfig{}

	fs.Var(&serverAddress, "a", "Control API address host:port")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "State database DSN")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "State database driver (sqlite3, postgres)")
	fs.StringVar(&cfg.Host.BookmarksFile, "b", "", "Browser profile Bookmarks file")
	fs.StringVar(&cfg.Remote.Kind, "kind", "", "Remote backend (gist, repo)")
	fs.StringVar(&cfg.Remote.GistID, "gist-id", "", "Gist identifier")
	fs.StringVar(&cfg.Remote.Owner, "owner", "", "Repository owner")
	fs.StringVar(&cfg.Remote.Repo, "repo", "", "Repository name")
	fs.StringVar(&cfg.Remote.Branch, "branch", "", "Repository branch")
	fs.StringVar(&cfg.Remote.Path, "path", "", "Envelope path inside the repository")
	fs.DurationVar(&cfg.Workers.SyncInterval, "interval", 0, "Auto-sync interval (e.g. 5m)")
	fs.DurationVar(&cfg.Remote.RequestTimeout, "request-timeout", 0, "Remote request timeout (e.g. 30s)")
	fs.StringVar(&cfg.App.DeviceID, "device-id", "", "Device identifier override")
	fs.BoolVar(&cfg.Host.WriteBack, "write-back", false, "Add remote-only bookmarks to the host file")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Log file path")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Control API token signing key")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Command = fs.Arg(0)
	if fs.NArg() > 1 {
		cfg.CommandArgs = fs.Args()[1:]
	}

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost".
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

