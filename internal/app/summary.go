package app

import (
	"github.com/piforge/claudeup/internal/scaffold"
	"github.com/piforge/claudeup/internal/secret"
	"github.com/piforge/claudeup/internal/ui"
)

// printSummary renders the closing report after a successful run.
func printSummary(printer ui.Printer, layout scaffold.Layout, user string, secretResult secret.Result) {
	printer.Blank()
	printer.Banner("SETUP COMPLETE")
	printer.Blank()

	printer.Title("Installed")
	printer.Info("Docker Engine        docker --version")
	printer.Info("Docker Compose       docker compose version")
	printer.Info("Node.js & npm        node --version / npm --version")
	printer.Info("Claude Code CLI      claude")
	printer.Info("Anthropic SDK        python3 -c 'import anthropic'")

	printer.Title("Workspace")
	printer.Info("%s/", layout.Root)
	printer.Info("  %s", scaffold.ComposeFileName)
	printer.Info("  %s          <- API key goes here", scaffold.EnvFileName)
	printer.Info("  %s  <- quick launcher", scaffold.LauncherFileName)
	printer.Info("  %s/          <- your project files", scaffold.WorkDirName)

	printer.Title("To launch")
	printer.Info("cd %s && ./%s", layout.Root, scaffold.LauncherFileName)

	if secretResult.Saved {
		printer.Success("API key saved to %s and the shell profile", scaffold.EnvFileName)
	} else {
		printer.Warn("No API key stored yet; edit %s before launching", layout.EnvFile)
	}

	printer.Blank()
	printer.Warn("Reboot or run 'newgrp docker' so %s can use docker without sudo.", user)
}
