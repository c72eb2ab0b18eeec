package mqtt

// ReasonCode is the single-byte outcome indicator carried by MQTT v5.0
// CONNACK, PUBACK, PUBREC, PUBREL, PUBCOMP, SUBACK, UNSUBACK, DISCONNECT and
// AUTH packets. Values 0x00-0x7F indicate success, 0x80-0xFF indicate
// failure.
type ReasonCode uint8

// MQTT v5.0 Reason Codes, per OASIS MQTT Version 5.0, section 2.4.
const (
	ReasonSuccess                     ReasonCode = 0x00 // also NormalDisconnection, GrantedQoS0
	ReasonGrantedQoS1                 ReasonCode = 0x01
	ReasonGrantedQoS2                 ReasonCode = 0x02
	ReasonDisconnectWithWillMessage   ReasonCode = 0x04
	ReasonNoMatchingSubscribers       ReasonCode = 0x10
	ReasonNoSubscriptionExisted       ReasonCode = 0x11
	ReasonContinueAuthentication      ReasonCode = 0x18
	ReasonReAuthenticate              ReasonCode = 0x19
	ReasonUnspecifiedError            ReasonCode = 0x80
	ReasonMalformedPacket             ReasonCode = 0x81
	ReasonProtocolError               ReasonCode = 0x82
	ReasonImplementationSpecificError ReasonCode = 0x83
	ReasonUnsupportedProtocolVersion  ReasonCode = 0x84
	ReasonClientIdentifierNotValid    ReasonCode = 0x85
	ReasonBadUsernameOrPassword       ReasonCode = 0x86
	ReasonNotAuthorized               ReasonCode = 0x87
	ReasonServerUnavailable           ReasonCode = 0x88
	ReasonServerBusy                  ReasonCode = 0x89
	ReasonBanned                      ReasonCode = 0x8A
	ReasonServerShuttingDown          ReasonCode = 0x8B
	ReasonBadAuthenticationMethod     ReasonCode = 0x8C
	ReasonKeepAliveTimeout            ReasonCode = 0x8D
	ReasonSessionTakenOver            ReasonCode = 0x8E
	ReasonTopicFilterInvalid          ReasonCode = 0x8F
	ReasonTopicNameInvalid            ReasonCode = 0x90
	ReasonPacketIdentifierInUse       ReasonCode = 0x91
	ReasonPacketIdentifierNotFound    ReasonCode = 0x92
	ReasonReceiveMaximumExceeded      ReasonCode = 0x93
	ReasonTopicAliasInvalid           ReasonCode = 0x94
	ReasonPacketTooLarge              ReasonCode = 0x95
	ReasonMessageRateTooHigh          ReasonCode = 0x96
	ReasonQuotaExceeded               ReasonCode = 0x97
	ReasonAdministrativeAction        ReasonCode = 0x98
	ReasonPayloadFormatInvalid        ReasonCode = 0x99
	ReasonRetainNotSupported          ReasonCode = 0x9A
	ReasonQoSNotSupported             ReasonCode = 0x9B
	ReasonUseAnotherServer            ReasonCode = 0x9C
	ReasonServerMoved                 ReasonCode = 0x9D
	ReasonSharedSubNotSupported       ReasonCode = 0x9E
	ReasonConnectionRateExceeded      ReasonCode = 0x9F
	ReasonMaximumConnectTime          ReasonCode = 0xA0
	ReasonSubscriptionIDsNotSupported ReasonCode = 0xA1
	ReasonWildcardSubNotSupported     ReasonCode = 0xA2
)

var reasonCodeNames = map[ReasonCode]string{
	ReasonSuccess:                     "Success",
	ReasonGrantedQoS1:                 "GrantedQoS1",
	ReasonGrantedQoS2:                 "GrantedQoS2",
	ReasonDisconnectWithWillMessage:   "DisconnectWithWillMessage",
	ReasonNoMatchingSubscribers:       "NoMatchingSubscribers",
	ReasonNoSubscriptionExisted:       "NoSubscriptionExisted",
	ReasonContinueAuthentication:      "ContinueAuthentication",
	ReasonReAuthenticate:              "ReAuthenticate",
	ReasonUnspecifiedError:            "UnspecifiedError",
	ReasonMalformedPacket:             "MalformedPacket",
	ReasonProtocolError:               "ProtocolError",
	ReasonImplementationSpecificError: "ImplementationSpecificError",
	ReasonUnsupportedProtocolVersion:  "UnsupportedProtocolVersion",
	ReasonClientIdentifierNotValid:    "ClientIdentifierNotValid",
	ReasonBadUsernameOrPassword:       "BadUsernameOrPassword",
	ReasonNotAuthorized:               "NotAuthorized",
	ReasonServerUnavailable:           "ServerUnavailable",
	ReasonServerBusy:                  "ServerBusy",
	ReasonBanned:                      "Banned",
	ReasonServerShuttingDown:          "ServerShuttingDown",
	ReasonBadAuthenticationMethod:     "BadAuthenticationMethod",
	ReasonKeepAliveTimeout:            "KeepAliveTimeout",
	ReasonSessionTakenOver:            "SessionTakenOver",
	ReasonTopicFilterInvalid:          "TopicFilterInvalid",
	ReasonTopicNameInvalid:            "TopicNameInvalid",
	ReasonPacketIdentifierInUse:       "PacketIdentifierInUse",
	ReasonPacketIdentifierNotFound:    "PacketIdentifierNotFound",
	ReasonReceiveMaximumExceeded:      "ReceiveMaximumExceeded",
	ReasonTopicAliasInvalid:           "TopicAliasInvalid",
	ReasonPacketTooLarge:              "PacketTooLarge",
	ReasonMessageRateTooHigh:          "MessageRateTooHigh",
	ReasonQuotaExceeded:               "QuotaExceeded",
	ReasonAdministrativeAction:        "AdministrativeAction",
	ReasonPayloadFormatInvalid:        "PayloadFormatInvalid",
	ReasonRetainNotSupported:          "RetainNotSupported",
	ReasonQoSNotSupported:             "QoSNotSupported",
	ReasonUseAnotherServer:            "UseAnotherServer",
	ReasonServerMoved:                 "ServerMoved",
	ReasonSharedSubNotSupported:       "SharedSubNotSupported",
	ReasonConnectionRateExceeded:      "ConnectionRateExceeded",
	ReasonMaximumConnectTime:          "MaximumConnectTime",
	ReasonSubscriptionIDsNotSupported: "SubscriptionIDsNotSupported",
	ReasonWildcardSubNotSupported:     "WildcardSubNotSupported",
}

func (c ReasonCode) String() string {
	if name, ok := reasonCodeNames[c]; ok {
		return name
	}
	return "Unknown"
}

// allowedReasonCodes maps a packet type to the set of reason codes the v5.0
// spec permits for it (tables 3.2-1, 3.4-2 through 3.15-1). CONNACK uses its
// own table below since its code space only partially overlaps the others.
var allowedReasonCodes = map[uint8]map[ReasonCode]bool{
	PUBACK: setOf(
		ReasonSuccess, ReasonNoMatchingSubscribers, ReasonUnspecifiedError,
		ReasonImplementationSpecificError, ReasonNotAuthorized, ReasonTopicNameInvalid,
		ReasonPacketIdentifierInUse, ReasonQuotaExceeded, ReasonPayloadFormatInvalid,
	),
	PUBREC: setOf(
		ReasonSuccess, ReasonNoMatchingSubscribers, ReasonUnspecifiedError,
		ReasonImplementationSpecificError, ReasonNotAuthorized, ReasonTopicNameInvalid,
		ReasonPacketIdentifierInUse, ReasonQuotaExceeded, ReasonPayloadFormatInvalid,
	),
	PUBREL: setOf(
		ReasonSuccess, ReasonPacketIdentifierNotFound,
	),
	PUBCOMP: setOf(
		ReasonSuccess, ReasonPacketIdentifierNotFound,
	),
	SUBACK: setOf(
		ReasonSuccess, ReasonGrantedQoS1, ReasonGrantedQoS2,
		ReasonUnspecifiedError, ReasonImplementationSpecificError, ReasonNotAuthorized,
		ReasonTopicFilterInvalid, ReasonPacketIdentifierInUse, ReasonQuotaExceeded,
		ReasonSharedSubNotSupported, ReasonSubscriptionIDsNotSupported, ReasonWildcardSubNotSupported,
	),
	UNSUBACK: setOf(
		ReasonSuccess, ReasonNoSubscriptionExisted, ReasonUnspecifiedError,
		ReasonImplementationSpecificError, ReasonNotAuthorized, ReasonTopicFilterInvalid,
		ReasonPacketIdentifierInUse,
	),
	DISCONNECT: setOf(
		ReasonSuccess, ReasonDisconnectWithWillMessage, ReasonUnspecifiedError,
		ReasonMalformedPacket, ReasonProtocolError, ReasonImplementationSpecificError,
		ReasonNotAuthorized, ReasonServerBusy, ReasonServerShuttingDown,
		ReasonKeepAliveTimeout, ReasonSessionTakenOver, ReasonTopicFilterInvalid,
		ReasonTopicNameInvalid, ReasonReceiveMaximumExceeded, ReasonTopicAliasInvalid,
		ReasonPacketTooLarge, ReasonMessageRateTooHigh, ReasonQuotaExceeded,
		ReasonAdministrativeAction, ReasonPayloadFormatInvalid, ReasonRetainNotSupported,
		ReasonQoSNotSupported, ReasonUseAnotherServer, ReasonServerMoved,
		ReasonSharedSubNotSupported, ReasonConnectionRateExceeded, ReasonMaximumConnectTime,
		ReasonSubscriptionIDsNotSupported, ReasonWildcardSubNotSupported,
	),
	AUTH: setOf(
		ReasonSuccess, ReasonContinueAuthentication, ReasonReAuthenticate,
	),
}

// connackReasonCodes is CONNACK's own reason code table (3.2.2.2); it does
// not reuse allowedReasonCodes because Success there means "connection
// accepted" rather than the generic per-packet Success used elsewhere, and
// several codes (e.g. ClientIdentifierNotValid) are CONNACK-only.
var connackReasonCodes = setOf(
	ReasonSuccess, ReasonUnspecifiedError, ReasonMalformedPacket, ReasonProtocolError,
	ReasonImplementationSpecificError, ReasonUnsupportedProtocolVersion,
	ReasonClientIdentifierNotValid, ReasonBadUsernameOrPassword, ReasonNotAuthorized,
	ReasonServerUnavailable, ReasonServerBusy, ReasonBanned, ReasonBadAuthenticationMethod,
	ReasonTopicNameInvalid, ReasonPacketTooLarge, ReasonQuotaExceeded,
	ReasonPayloadFormatInvalid, ReasonRetainNotSupported, ReasonQoSNotSupported,
	ReasonUseAnotherServer, ReasonServerMoved, ReasonConnectionRateExceeded,
	ReasonMaximumConnectTime, ReasonSubscriptionIDsNotSupported, ReasonWildcardSubNotSupported,
)

func setOf(codes ...ReasonCode) map[ReasonCode]bool {
	m := make(map[ReasonCode]bool, len(codes))
	for _, c := range codes {
		m[c] = true
	}
	return m
}

func validReasonCode(packetType uint8, code ReasonCode) bool {
	if packetType == CONNACK {
		return connackReasonCodes[code]
	}
	table, ok := allowedReasonCodes[packetType]
	if !ok {
		return false
	}
	return table[code]
}
