package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/tblsort/internal/command"
	"github.com/tfctl/tblsort/internal/comparator"
)

type Flag struct {
	ID          string
	Syntax      string
	Description string
	Default     string
}

type SortBy struct {
	Name     string
	Strategy string
}

type TemplateData struct {
	ID      string
	Short   string
	Usage   string
	Flags   []Flag
	SortBys []SortBy
	Date    string
	Version string
	IDUpper string
}

// usager is satisfied by every flag type in urfave/cli.
type usager interface {
	GetUsage() string
	GetValue() string
	TakesValue() bool
}

const commandTemplate = `# tblsort {{.ID}}

{{.Short}}

` + "```" + `
{{.Usage}}
` + "```" + `

## Flags
{{range .Flags}}
- ` + "`{{.Syntax}}`" + `: {{.Description}}{{if .Default}} (default ` + "`{{.Default}}`" + `){{end}}
{{- end}}
{{if .SortBys}}
## Sort strategies

| SORT_BY | Strategy |
|---|---|
{{- range .SortBys}}
| {{.Name}} | {{.Strategy}} |
{{- end}}
{{end}}
_{{.IDUpper}} reference generated {{.Date}} for version {{.Version}}._
`

func main() {

	docs := "docs"
	if len(os.Args) > 1 {
		docs = os.Args[1]
	}

	app, err := command.InitApp(context.Background(), []string{"tblsort"})
	if err != nil {
		panic(err)
	}

	tmpl := template.Must(template.New("command").Parse(commandTemplate))
	folder := filepath.Join(docs, "commands")
	if err := os.MkdirAll(folder, 0755); err != nil {
		panic(err)
	}

	for _, sub := range app.Commands {
		metadata := TemplateData{
			ID:      sub.Name,
			Short:   sub.Usage,
			Usage:   sub.UsageText,
			Flags:   flags(sub),
			Date:    time.Now().Format("January 2, 2006"),
			Version: getVersion(),
			IDUpper: strings.ToUpper(sub.Name),
		}
		if sub.Name == "compare" || sub.Name == "columns" {
			metadata.SortBys = sortBys()
		}

		path := filepath.Join(folder, sub.Name+".md")
		file, err := os.Create(path)
		if err != nil {
			panic(err)
		}
		fmt.Println("Generating", path)

		if err := tmpl.Execute(file, metadata); err != nil {
			panic(err)
		}

		file.Close()
	}
}

func flags(cmd *cli.Command) (out []Flag) {
	for _, f := range cmd.Flags {
		names := f.Names()
		syntax := make([]string, 0, len(names))
		for _, n := range names {
			if len(n) == 1 {
				syntax = append(syntax, "-"+n)
			} else {
				syntax = append(syntax, "--"+n)
			}
		}

		flag := Flag{ID: names[0], Syntax: strings.Join(syntax, ", ")}
		if u, ok := f.(usager); ok {
			flag.Description = u.GetUsage()
			if u.TakesValue() {
				flag.Default = u.GetValue()
			}
		}
		out = append(out, flag)
	}
	return
}

func sortBys() (out []SortBy) {
	for _, c := range comparator.Columns() {
		kind, _ := comparator.KindOf(c)
		out = append(out, SortBy{Name: string(c), Strategy: kind.String()})
	}
	return
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
