package pix

// Fixed values of the BR Code layout. Re-targeting the codec to a different
// scheme, currency or country only touches this block.
const (
	PayloadFormatIndicator = "01"
	PointOfInitiationOnce  = "12"
	DomainIdentifier       = "br.gov.bcb.pix"
	MerchantCategoryCode   = "0000"
	CurrencyCode           = "986"
	CountryCode            = "BR"
	DefaultTransactionID   = "***"
)

// Top-level tags.
const (
	TagPayloadFormat     = "00"
	TagPointOfInitiation = "01"
	TagMerchantAccount   = "26"
	TagCategoryCode      = "52"
	TagCurrency          = "53"
	TagAmount            = "54"
	TagCountry           = "58"
	TagName              = "59"
	TagCity              = "60"
	TagAdditionalData    = "62"
	TagCRC               = "63"
)

// Tags nested under TagMerchantAccount and TagAdditionalData.
const (
	TagDomain        = "00"
	TagPayeeKey      = "01"
	TagTransactionID = "05"
	TagNote          = "50"
)

// Length ceilings.
const (
	MaxNameLength          = 25
	MaxCityLength          = 15
	MaxNoteLength          = 30
	MaxTransactionIDLength = 25
	MaxPayeeKeyLength      = 77
	MaxAmountLength        = 13
	MaxValueLength         = 99
)

// crcPrefix is the tag and length of the checksum field, written before the
// checksum is computed.
const crcPrefix = TagCRC + "04"
