// Package dot11u holds the 802.11u (interworking) and ANQP enumerations
// referenced by information elements carried in management-frame bodies.
// Decoding the information elements themselves is out of scope (spec.md
// restricts this module to the Radiotap/MPDU headers); this package only
// names the constants so a caller walking an MPDU's frame body can label
// them.
package dot11u

// AccessNetworkType is the 4-bit Access Network Type field of the
// Interworking information element (IEEE 802.11-2020 9.4.2.92).
type AccessNetworkType uint8

const (
	AccessNetworkPrivate AccessNetworkType = iota
	AccessNetworkPrivateWithGuest
	AccessNetworkChargeablePublic
	AccessNetworkFreePublic
	AccessNetworkPersonalDevice
	AccessNetworkEmergencyServicesOnly
	_
	_
	AccessNetworkTestOrExperimental AccessNetworkType = 14
	AccessNetworkWildcard           AccessNetworkType = 15
)

// String names an AccessNetworkType.
func (t AccessNetworkType) String() string {
	switch t {
	case AccessNetworkPrivate:
		return "private"
	case AccessNetworkPrivateWithGuest:
		return "private-with-guest"
	case AccessNetworkChargeablePublic:
		return "chargeable-public"
	case AccessNetworkFreePublic:
		return "free-public"
	case AccessNetworkPersonalDevice:
		return "personal-device"
	case AccessNetworkEmergencyServicesOnly:
		return "emergency-services-only"
	case AccessNetworkTestOrExperimental:
		return "test-or-experimental"
	case AccessNetworkWildcard:
		return "wildcard"
	default:
		return "reserved"
	}
}

// VenueGroup is the Venue Group field of the Interworking/Venue Name
// elements (IEEE 802.11-2020 Annex C / 9.4.2.92).
type VenueGroup uint8

const (
	VenueUnspecified VenueGroup = iota
	VenueAssembly
	VenueBusiness
	VenueEducational
	VenueFactoryAndIndustrial
	VenueInstitutional
	VenueMercantile
	VenueResidential
	VenueStorage
	VenueUtilityAndMisc
	VenueVehicular
	VenueOutdoor
)

// ANQPInfoID identifies an ANQP query/response element (IEEE 802.11-2020
// Table 9-277).
type ANQPInfoID uint16

const (
	ANQPQueryList             ANQPInfoID = 256
	ANQPCapabilityList        ANQPInfoID = 257
	ANQPVenueName             ANQPInfoID = 258
	ANQPEmergencyCallNumber   ANQPInfoID = 259
	ANQPNetworkAuthType       ANQPInfoID = 260
	ANQPRoamingConsortium     ANQPInfoID = 261
	ANQPIPAddrTypeAvail       ANQPInfoID = 262
	ANQPNAIRealm              ANQPInfoID = 263
	ANQP3GPPCellularNetwork   ANQPInfoID = 264
	ANQPDomainName            ANQPInfoID = 268
	ANQPVendorSpecific        ANQPInfoID = 56797
)

// String names an ANQPInfoID, or "reserved" if unrecognized.
func (id ANQPInfoID) String() string {
	switch id {
	case ANQPQueryList:
		return "query-list"
	case ANQPCapabilityList:
		return "capability-list"
	case ANQPVenueName:
		return "venue-name"
	case ANQPEmergencyCallNumber:
		return "emergency-call-number"
	case ANQPNetworkAuthType:
		return "network-auth-type"
	case ANQPRoamingConsortium:
		return "roaming-consortium"
	case ANQPIPAddrTypeAvail:
		return "ip-addr-type-availability"
	case ANQPNAIRealm:
		return "nai-realm"
	case ANQP3GPPCellularNetwork:
		return "3gpp-cellular-network"
	case ANQPDomainName:
		return "domain-name"
	case ANQPVendorSpecific:
		return "vendor-specific"
	default:
		return "reserved"
	}
}
