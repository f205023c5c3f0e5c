package scaffold

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// launcherTemplate is the POSIX launcher the user runs after setup. It
// loads the env file when the key is not already exported, refuses to
// start on a missing or placeholder key, and offers the native CLI or the
// containerized path.
const launcherTemplate = `#!/usr/bin/env bash
set -e
DIR="$(cd "$(dirname "$0")" && pwd)"
if [ -z "${{ .EnvKey }}" ]; then
  source "$DIR/{{ .EnvFile }}" 2>/dev/null || true
  export {{ .EnvKey }}
fi
if [ "${{ .EnvKey }}" = {{ .Placeholder | quote }} ] || [ -z "${{ .EnvKey }}" ]; then
  echo ""; echo "  No API key set.  Edit $DIR/{{ .EnvFile }} first."; echo ""; exit 1
fi
echo ""
echo "  1) Native  (claude CLI)"
echo "  2) Docker  (container)"
echo ""
read -rp "  Pick [1/2]: " choice
case "$choice" in
  2) cd "$DIR" && docker compose up ;;
  *) cd "$DIR/{{ .WorkDir }}" && claude ;;
esac
`

// RenderLauncher produces the launcher script body.
func RenderLauncher() ([]byte, error) {
	tmpl, err := template.New(LauncherFileName).
		Funcs(sprig.TxtFuncMap()).
		Parse(launcherTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing launcher template: %w", err)
	}

	var buf bytes.Buffer
	data := map[string]string{
		"EnvKey":      EnvKey,
		"EnvFile":     EnvFileName,
		"WorkDir":     WorkDirName,
		"Placeholder": PlaceholderValue,
	}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering launcher template: %w", err)
	}
	return buf.Bytes(), nil
}
