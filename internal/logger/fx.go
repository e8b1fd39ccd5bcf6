package logger

import (
	"strings"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx/fxevent"
)

// FxLogger routes fx lifecycle events into zerolog.
type FxLogger struct{}

func (FxLogger) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.OnStartExecuted:
		if e.Err != nil {
			log.Error().Err(e.Err).Str("callee", e.FunctionName).Msg("fx OnStart hook failed")
			return
		}
		log.Debug().Str("callee", e.FunctionName).Dur("runtime", e.Runtime).Msg("fx OnStart hook executed")
	case *fxevent.OnStopExecuted:
		if e.Err != nil {
			log.Error().Err(e.Err).Str("callee", e.FunctionName).Msg("fx OnStop hook failed")
			return
		}
		log.Debug().Str("callee", e.FunctionName).Dur("runtime", e.Runtime).Msg("fx OnStop hook executed")
	case *fxevent.Provided:
		if e.Err != nil {
			log.Error().Err(e.Err).Str("constructor", e.ConstructorName).Msg("fx provide failed")
			return
		}
		log.Debug().Str("constructor", e.ConstructorName).Str("types", strings.Join(e.OutputTypeNames, ", ")).Msg("fx provided")
	case *fxevent.Invoked:
		if e.Err != nil {
			log.Error().Err(e.Err).Str("function", e.FunctionName).Msg("fx invoke failed")
		}
	case *fxevent.Started:
		if e.Err != nil {
			log.Error().Err(e.Err).Msg("fx start failed")
			return
		}
		log.Info().Msg("fx application started")
	case *fxevent.Stopped:
		if e.Err != nil {
			log.Error().Err(e.Err).Msg("fx stop failed")
		}
	}
}
