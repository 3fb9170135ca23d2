package urc

import "go.uber.org/zap"

type logHandler struct {
	log *zap.Logger
}

// NewLogHandler returns a Handler that logs SIM, network, call, SMS and
// voltage events and discards the rest.
func NewLogHandler(log *zap.Logger) Handler {
	return logHandler{log: log.Named("urc")}
}

func (h logHandler) HandleURC(e Event) {
	switch e.Code {
	case SIMCardState:
		switch e.Param {
		case SIMNotInserted:
			h.log.Info("SIM card not inserted")
		case SIMReady:
			h.log.Debug("SIM card ready")
		case SIMPINRequired:
			h.log.Info("SIM PIN required")
		case SIMPUKRequired:
			h.log.Info("SIM PUK required")
		case SIMNotReady:
			h.log.Info("SIM card not recognized")
		default:
			h.log.Info("SIM error", zap.Uint32("state", e.Param))
		}
	case GSMNetworkState:
		h.log.Info("GSM network state", zap.Uint32("state", e.Param))
	case IncomingCall:
		number := ""
		if e.Call != nil {
			number = e.Call.Number
		}
		h.log.Info("incoming voice call", zap.String("from", number))
	case CallState:
		switch e.Param {
		case CallBusy:
			h.log.Info("dialed number is busy")
		case CallNoAnswer:
			h.log.Info("dialed number has no answer")
		case CallNoCarrier:
			h.log.Info("dialed number cannot be reached")
		case CallNoDialtone:
			h.log.Info("no dial tone")
		}
	case NewSMS:
		h.log.Info("new SMS", zap.Uint32("index", e.Param))
	case ModuleVoltage:
		h.log.Debug("battery voltage", zap.Uint32("mV", e.Param))
	default:
		// SysInitState, GPRS, CFUN, alarm, download, FOTA and STK are not
		// of interest here.
	}
}
