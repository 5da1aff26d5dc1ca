package transport

// Version is the current build version, injected at build time via ldflags:
//
//	-X github.com/Easy-Infra-Ltd/eunicode/src/transport.Version=<tag>
//
// Defaults to "dev" when built without ldflags, in which case the version
// command falls back to the module build info.
var Version = "dev"
