package main

import (
	"ataxx/config"
	"ataxx/shell"
)

func runShell(cfg *config.Config) error {
	sc := shell.NewShellController(cfg, nil)
	return sc.Loop()
}
