// Package autoload configures the global logger from the environment as an
// import side effect. Import it blank from main.
package autoload

import (
	configx "github.com/emiliomantilla/AIgent007/pkg/config"
	logx "github.com/emiliomantilla/AIgent007/pkg/logger"
)

func init() {
	logx.Init(*configx.MustNew[logx.Config]("LOG"))
}
