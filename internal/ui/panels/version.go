package panels

// Version is stamped at build time with
// -ldflags "-X github.com/justinpbarnett/nexusdesk/internal/ui/panels.Version=v1.2.3".
var Version = "dev"
