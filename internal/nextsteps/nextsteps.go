// Package nextsteps derives the follow-up instructions printed after an
// extraction: how to enter the output directory, install dependencies and
// start the dev server.
package nextsteps

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Plan is the list of shell steps plus any warnings about the local toolchain.
type Plan struct {
	Steps    []string
	URL      string
	Warnings []string
}

// Planner builds a Plan for an extracted project.
type Planner struct {
	// DevURL is where the extracted app's dev server listens.
	DevURL string
	// NodeVersion reports the installed Node.js version. Defaults to running
	// `node --version`; tests replace it.
	NodeVersion func() (string, error)
	Logger      *slog.Logger
}

type packageJSON struct {
	PackageManager string            `json:"packageManager"`
	Scripts        map[string]string `json:"scripts"`
	Engines        struct {
		Node string `json:"node"`
	} `json:"engines"`
}

// lockfiles map an extracted lockfile to the package manager that wrote it.
var lockfiles = []struct {
	name    string
	manager string
}{
	{"pnpm-lock.yaml", "pnpm"},
	{"yarn.lock", "yarn"},
	{"package-lock.json", "npm"},
}

// Plan inspects dir and returns the follow-up steps. Without a readable
// package.json the defaults are `npm install` and `npm run dev`.
func (p *Planner) Plan(dir string) *Plan {
	plan := &Plan{
		Steps: []string{"cd " + dir, "npm install", "npm run dev"},
		URL:   p.DevURL,
	}

	pkgPath := filepath.Join(dir, "package.json")
	data, err := os.ReadFile(pkgPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			p.logger().Debug("reading package.json", slog.String("path", pkgPath), slog.Any("error", err))
		}
		return plan
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		p.logger().Debug("package.json is not valid JSON, using default steps", slog.Any("error", err))
		return plan
	}

	manager := detectManager(dir, pkg.PackageManager)
	script := "dev"
	if _, ok := pkg.Scripts["dev"]; !ok {
		if _, ok := pkg.Scripts["start"]; ok {
			script = "start"
		}
	}
	plan.Steps = []string{"cd " + dir, manager + " install", manager + " run " + script}
	p.logger().Debug("derived next steps", slog.String("manager", manager), slog.String("script", script))

	if pkg.Engines.Node != "" {
		if w := p.checkNode(pkg.Engines.Node); w != "" {
			plan.Warnings = append(plan.Warnings, w)
		}
	}

	return plan
}

// detectManager prefers the packageManager field ("pnpm@9.1.0"), then lockfiles.
func detectManager(dir, declared string) string {
	if declared != "" {
		name, _, _ := strings.Cut(declared, "@")
		switch name {
		case "npm", "pnpm", "yarn":
			return name
		}
	}
	for _, lf := range lockfiles {
		if _, err := os.Stat(filepath.Join(dir, lf.name)); err == nil {
			return lf.manager
		}
	}
	return "npm"
}

// checkNode returns a warning when the installed Node.js does not satisfy
// the engines.node range, or an empty string when it does.
func (p *Planner) checkNode(rangeSpec string) string {
	constraint, err := semver.NewConstraint(rangeSpec)
	if err != nil {
		return fmt.Sprintf("package.json engines.node %q is not a valid version range", rangeSpec)
	}

	nodeVersion := p.NodeVersion
	if nodeVersion == nil {
		nodeVersion = installedNodeVersion
	}

	raw, err := nodeVersion()
	if err != nil {
		return fmt.Sprintf("Node.js not found; the project requires node %s", rangeSpec)
	}

	v, err := semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(raw), "v"))
	if err != nil {
		return fmt.Sprintf("could not parse Node.js version %q", strings.TrimSpace(raw))
	}

	if !constraint.Check(v) {
		return fmt.Sprintf("Node.js %s does not satisfy engines.node %q", v, rangeSpec)
	}
	return ""
}

func installedNodeVersion() (string, error) {
	nodeBin, err := exec.LookPath("node")
	if err != nil {
		return "", err
	}
	out, err := exec.Command(nodeBin, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("running node --version: %w", err)
	}
	return string(out), nil
}

func (p *Planner) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}
