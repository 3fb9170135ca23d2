// Package urc carries unsolicited result codes from the modem runtime to a
// single process-wide handler.
package urc

import "fmt"

// Code is the kind of an unsolicited result.
type Code uint32

const (
	SysInitState Code = iota
	SIMCardState
	GSMNetworkState
	GPRSNetworkState
	CFUNState
	IncomingCall
	CallState
	NewSMS
	ModuleVoltage
	AlarmRing
	FileDownloadStatus
	FOTAStarted
	FOTAFinished
	FOTAFailed
	STKPCIResponse
)

var codeNames = [...]string{
	SysInitState:       "SYS_INIT_STATE",
	SIMCardState:       "SIM_CARD_STATE",
	GSMNetworkState:    "GSM_NW_STATE",
	GPRSNetworkState:   "GPRS_NW_STATE",
	CFUNState:          "CFUN_STATE",
	IncomingCall:       "COMING_CALL",
	CallState:          "CALL_STATE",
	NewSMS:             "NEW_SMS",
	ModuleVoltage:      "MODULE_VOLTAGE",
	AlarmRing:          "ALARM_RING",
	FileDownloadStatus: "FILE_DOWNLOAD_STATUS",
	FOTAStarted:        "FOTA_STARTED",
	FOTAFinished:       "FOTA_FINISHED",
	FOTAFailed:         "FOTA_FAILED",
	STKPCIResponse:     "STKPCI_RSP",
}

func (c Code) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("URC(%d)", uint32(c))
}

// Param values for SysInitState.
const (
	SysStateSMSOK = 3
)

// Param values for SIMCardState.
const (
	SIMNotInserted = iota
	SIMReady
	SIMPINRequired
	SIMPUKRequired
	SIMNotReady
)

// Param values for CallState.
const (
	CallBusy = iota
	CallNoAnswer
	CallNoCarrier
	CallNoDialtone
)

// CallInfo accompanies IncomingCall.
type CallInfo struct {
	Number string
}

// Event is one unsolicited result.
type Event struct {
	Code  Code
	Param uint32
	Call  *CallInfo // IncomingCall only
}
