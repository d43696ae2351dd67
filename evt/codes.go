package evt

// Event codes [Vol 4, Part E, 7.7].
const (
	DisconnectionCompleteCode uint8 = 0x05 // 7.7.5
	CommandCompleteCode       uint8 = 0x0E // 7.7.14
	LEMetaCode                uint8 = 0x3E // 7.7.65
)

// LE Meta subevent codes [Vol 4, Part E, 7.7.65]. The full set is named
// so that an unhandled subevent still logs and reports recognizably;
// only the first three have decoders.
const (
	LEConnectionCompleteSubCode                        uint8 = 0x01
	LEAdvertisingReportSubCode                         uint8 = 0x02
	LEConnectionUpdateCompleteSubCode                  uint8 = 0x03
	LEReadRemoteFeaturesPage0CompleteSubCode           uint8 = 0x04
	LELongTermKeyRequestSubCode                        uint8 = 0x05
	LERemoteConnectionParameterRequestSubCode          uint8 = 0x06
	LEDataLengthChangeSubCode                          uint8 = 0x07
	LEReadLocalP256PublicKeyCompleteSubCode            uint8 = 0x08
	LEGenerateDHKeyCompleteSubCode                     uint8 = 0x09
	LEEnhancedConnectionCompleteV1SubCode              uint8 = 0x0A
	LEDirectedAdvertisingReportSubCode                 uint8 = 0x0B
	LEPHYUpdateCompleteSubCode                         uint8 = 0x0C
	LEExtendedAdvertisingReportSubCode                 uint8 = 0x0D
	LEPeriodicAdvertisingSyncEstablishedSubCode        uint8 = 0x0E
	LEPeriodicAdvertisingReportSubCode                 uint8 = 0x0F
	LEPeriodicAdvertisingSyncLostSubCode               uint8 = 0x10
	LEScanTimeoutSubCode                               uint8 = 0x11
	LEAdvertisingSetTerminatedSubCode                  uint8 = 0x12
	LEScanRequestReceivedSubCode                       uint8 = 0x13
	LEChannelSelectionAlgorithmSubCode                 uint8 = 0x14
	LEConnectionlessIQReportSubCode                    uint8 = 0x15
	LEConnectionIQReportSubCode                        uint8 = 0x16
	LECTERequestFailedSubCode                          uint8 = 0x17
	LEPeriodicAdvSyncTransferReceivedV1SubCode         uint8 = 0x18
	LECISEstablishedV1SubCode                          uint8 = 0x19
	LECISRequestSubCode                                uint8 = 0x1A
	LECreateBIGCompleteSubCode                         uint8 = 0x1B
	LETerminateBIGCompleteSubCode                      uint8 = 0x1C
	LEBIGSyncEstablishedSubCode                        uint8 = 0x1D
	LEBIGSyncLostSubCode                               uint8 = 0x1E
	LERequestPeerSCACompleteSubCode                    uint8 = 0x1F
	LEPathLossThresholdSubCode                         uint8 = 0x20
	LETransmitPowerReportingSubCode                    uint8 = 0x21
	LEBIGInfoAdvertisingReportSubCode                  uint8 = 0x22
	LESubrateChangeSubCode                             uint8 = 0x23
	LEPeriodicAdvSyncTransferReceivedV2SubCode         uint8 = 0x26
	LEPeriodicAdvSubeventDataRequestSubCode            uint8 = 0x27
	LEPeriodicAdvResponseReportSubCode                 uint8 = 0x28
	LEEnhancedConnectionCompleteV2SubCode              uint8 = 0x29
	LECISEstablishedV2SubCode                          uint8 = 0x2A
	LEReadAllRemoteFeaturesCompleteSubCode             uint8 = 0x2B
	LECSReadRemoteSupportedCapabilitiesCompleteSubCode uint8 = 0x2C
	LECSReadRemoteFAETableCompleteSubCode              uint8 = 0x2D
	LECSSecurityEnableCompleteSubCode                  uint8 = 0x2E
	LECSConfigCompleteSubCode                          uint8 = 0x2F
	LECSProcedureEnableCompleteSubCode                 uint8 = 0x30
	LECSSubeventResultSubCode                          uint8 = 0x31
	LECSSubeventResultContinueSubCode                  uint8 = 0x32
	LECSTestEndCompleteSubCode                         uint8 = 0x33
	LEMonitoredAdvertisersReportSubCode                uint8 = 0x34
	LEFrameSpaceUpdateCompleteSubCode                  uint8 = 0x35
)

var eventCodeNames = map[uint8]string{
	DisconnectionCompleteCode: "DisconnectionComplete",
	CommandCompleteCode:       "CommandComplete",
	LEMetaCode:                "LEMetaEvent",
}

var subeventCodeNames = map[uint8]string{
	LEConnectionCompleteSubCode:                        "ConnectionComplete",
	LEAdvertisingReportSubCode:                         "AdvertisingReport",
	LEConnectionUpdateCompleteSubCode:                  "ConnectionUpdateComplete",
	LEReadRemoteFeaturesPage0CompleteSubCode:           "ReadRemoteFeaturesPage0Complete",
	LELongTermKeyRequestSubCode:                        "LongTermKeyRequest",
	LERemoteConnectionParameterRequestSubCode:          "RemoteConnectionParameterRequest",
	LEDataLengthChangeSubCode:                          "DataLengthChange",
	LEReadLocalP256PublicKeyCompleteSubCode:            "ReadLocalP256PublicKeyComplete",
	LEGenerateDHKeyCompleteSubCode:                     "GenerateDHKeyComplete",
	LEEnhancedConnectionCompleteV1SubCode:              "EnhancedConnectionCompleteV1",
	LEDirectedAdvertisingReportSubCode:                 "DirectedAdvertisingReport",
	LEPHYUpdateCompleteSubCode:                         "PHYUpdateComplete",
	LEExtendedAdvertisingReportSubCode:                 "ExtendedAdvertisingReport",
	LEPeriodicAdvertisingSyncEstablishedSubCode:        "PeriodicAdvertisingSyncEstablished",
	LEPeriodicAdvertisingReportSubCode:                 "PeriodicAdvertisingReport",
	LEPeriodicAdvertisingSyncLostSubCode:               "PeriodicAdvertisingSyncLost",
	LEScanTimeoutSubCode:                               "ScanTimeout",
	LEAdvertisingSetTerminatedSubCode:                  "AdvertisingSetTerminated",
	LEScanRequestReceivedSubCode:                       "ScanRequestReceived",
	LEChannelSelectionAlgorithmSubCode:                 "ChannelSelectionAlgorithm",
	LEConnectionlessIQReportSubCode:                    "ConnectionlessIQReport",
	LEConnectionIQReportSubCode:                        "ConnectionIQReport",
	LECTERequestFailedSubCode:                          "CTERequestFailed",
	LEPeriodicAdvSyncTransferReceivedV1SubCode:         "PeriodicAdvertisingSyncTransferReceivedV1",
	LECISEstablishedV1SubCode:                          "CISEstablishedV1",
	LECISRequestSubCode:                                "CISRequest",
	LECreateBIGCompleteSubCode:                         "CreateBIGComplete",
	LETerminateBIGCompleteSubCode:                      "TerminateBIGComplete",
	LEBIGSyncEstablishedSubCode:                        "BIGSyncEstablished",
	LEBIGSyncLostSubCode:                               "BIGSyncLost",
	LERequestPeerSCACompleteSubCode:                    "RequestPeerSCAComplete",
	LEPathLossThresholdSubCode:                         "PathLossThreshold",
	LETransmitPowerReportingSubCode:                    "TransmitPowerReporting",
	LEBIGInfoAdvertisingReportSubCode:                  "BIGInfoAdvertisingReport",
	LESubrateChangeSubCode:                             "SubrateChange",
	LEPeriodicAdvSyncTransferReceivedV2SubCode:         "PeriodicAdvertisingSyncTransferReceivedV2",
	LEPeriodicAdvSubeventDataRequestSubCode:            "PeriodicAdvertisingSubeventDataRequest",
	LEPeriodicAdvResponseReportSubCode:                 "PeriodicAdvertisingResponseReport",
	LEEnhancedConnectionCompleteV2SubCode:              "EnhancedConnectionCompleteV2",
	LECISEstablishedV2SubCode:                          "CISEstablishedV2",
	LEReadAllRemoteFeaturesCompleteSubCode:             "ReadAllRemoteFeaturesComplete",
	LECSReadRemoteSupportedCapabilitiesCompleteSubCode: "CSReadRemoteSupportedCapabilitiesComplete",
	LECSReadRemoteFAETableCompleteSubCode:              "CSReadRemoteFAETableComplete",
	LECSSecurityEnableCompleteSubCode:                  "CSSecurityEnableComplete",
	LECSConfigCompleteSubCode:                          "CSConfigComplete",
	LECSProcedureEnableCompleteSubCode:                 "CSProcedureEnableComplete",
	LECSSubeventResultSubCode:                          "CSSubeventResult",
	LECSSubeventResultContinueSubCode:                  "CSSubeventResultContinue",
	LECSTestEndCompleteSubCode:                         "CSTestEndComplete",
	LEMonitoredAdvertisersReportSubCode:                "MonitoredAdvertisersReport",
	LEFrameSpaceUpdateCompleteSubCode:                  "FrameSpaceUpdateComplete",
}

// EventCodeName maps an event code to its name. Total over all 256
// values: unassigned codes map to "" and false.
func EventCodeName(code uint8) (string, bool) {
	n, ok := eventCodeNames[code]
	return n, ok
}

// EventCodeByName is the exact inverse of EventCodeName for named codes.
func EventCodeByName(name string) (uint8, bool) {
	for c, n := range eventCodeNames {
		if n == name {
			return c, true
		}
	}
	return 0, false
}

// SubeventCodeName maps an LE Meta subevent code to its name. Total over
// all 256 values: unassigned codes map to "" and false.
func SubeventCodeName(code uint8) (string, bool) {
	n, ok := subeventCodeNames[code]
	return n, ok
}

// SubeventCodeByName is the exact inverse of SubeventCodeName for named
// codes.
func SubeventCodeByName(name string) (uint8, bool) {
	for c, n := range subeventCodeNames {
		if n == name {
			return c, true
		}
	}
	return 0, false
}
