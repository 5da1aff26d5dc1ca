package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/Easy-Infra-Ltd/eunicode/src/transport"
	"github.com/spf13/cobra"
)

func newVersionCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printVersion(env)
		},
	}
}

func printVersion(env *Env) {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		fmt.Fprintf(env.Stdout, "eunicode %s\n", transport.Version)
		return
	}

	settings := make(map[string]string)
	for _, s := range buildInfo.Settings {
		settings[s.Key] = s.Value
	}

	version := transport.Version
	if version == "dev" && buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
		version = buildInfo.Main.Version
	}

	fmt.Fprintf(env.Stdout, "eunicode %s\n", version)
	fmt.Fprintf(env.Stdout, "  Go %s %s %s\n", buildInfo.GoVersion, runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(env.Stdout, "  From %s\n", buildInfo.Path)
	if rev := settings["vcs.revision"]; rev != "" {
		fmt.Fprintf(env.Stdout, "  Commit %s @%s dirty=%s\n", rev, settings["vcs.time"], settings["vcs.modified"])
	}
}
