// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

// Package constants contains shared constants for the zoom location service.
package constants

// RegistrationTypeSingle locks registrants to the one scheduled occurrence.
// All meetings created by this service are single-occurrence, so the
// registration type is always forced to this value.
const RegistrationTypeSingle = 2

// MinimumMeetingDurationMinutes is the duration assigned to meetings whose
// event start and end times are identical. Zoom rejects zero-length meetings.
const MinimumMeetingDurationMinutes = 15

// ZoomRegistrantQuestions returns the fixed vocabulary of registrant fields
// Zoom recognizes natively, keyed by field name. A nil value means the field
// accepts any string; a non-nil value is the exact list of answers Zoom
// permits, in the order Zoom declares them.
//
// first_name, last_name and email are intentionally absent: Zoom requires
// them on every registrant and rejects them as questions.
func ZoomRegistrantQuestions() map[string][]string {
	return map[string][]string{
		"address":   nil,
		"city":      nil,
		"country":   nil,
		"zip":       nil,
		"state":     nil,
		"phone":     nil,
		"industry":  nil,
		"org":       nil,
		"job_title": nil,
		"comments":  nil,
		"purchasing_time_frame": {
			"Within a month", "1-3 months", "4-6 months", "More than 6 months", "No timeframe",
		},
		"role_in_purchase_process": {
			"Decision Maker", "Evaluator/Recommender", "Influencer", "Not involved",
		},
		"no_of_employees": {
			"1-20", "21-50", "51-100", "101-500", "500-1,000", "1,001-5,000", "5,001-10,000", "More than 10,000",
		},
	}
}

// ReservedRegistrantFields are form field IDs that carry registrant identity
// or credentials and must never be emitted as questions.
var ReservedRegistrantFields = []string{"email", "user_email", "first_name", "last_name", "user_password"}

// ZoomTimezones is the set of legacy IANA timezone identifiers the Zoom API
// accepts on meeting creation. Events in any other timezone are sent without
// a timezone so that Zoom defaults to UTC.
var ZoomTimezones = map[string]struct{}{}

// zoomTimezoneNames mirrors the timezone list published in Zoom's API
// reference for the meetings endpoint.
var zoomTimezoneNames = []string{
	"Pacific/Midway", "Pacific/Pago_Pago", "Pacific/Honolulu", "America/Anchorage",
	"America/Vancouver", "America/Los_Angeles", "America/Tijuana", "America/Edmonton",
	"America/Denver", "America/Phoenix", "America/Mazatlan", "America/Winnipeg",
	"America/Regina", "America/Chicago", "America/Mexico_City", "America/Guatemala",
	"America/El_Salvador", "America/Managua", "America/Costa_Rica", "America/Montreal",
	"America/New_York", "America/Indianapolis", "America/Panama", "America/Bogota",
	"America/Lima", "America/Halifax", "America/Puerto_Rico", "America/Caracas",
	"America/Santiago", "America/St_Johns", "America/Montevideo", "America/Araguaina",
	"America/Argentina/Buenos_Aires", "America/Godthab", "America/Sao_Paulo",
	"Atlantic/Azores", "Canada/Atlantic", "Atlantic/Cape_Verde", "UTC", "Etc/Greenwich",
	"Europe/Belgrade", "CET", "Atlantic/Reykjavik", "Europe/Dublin", "Europe/London",
	"Europe/Lisbon", "Africa/Casablanca", "Africa/Nouakchott", "Europe/Oslo",
	"Europe/Copenhagen", "Europe/Brussels", "Europe/Berlin", "Europe/Helsinki",
	"Europe/Amsterdam", "Europe/Rome", "Europe/Stockholm", "Europe/Vienna",
	"Europe/Luxembourg", "Europe/Paris", "Europe/Zurich", "Europe/Madrid",
	"Africa/Bangui", "Africa/Algiers", "Africa/Tunis", "Africa/Harare",
	"Africa/Nairobi", "Europe/Warsaw", "Europe/Prague", "Europe/Budapest",
	"Europe/Sofia", "Europe/Istanbul", "Europe/Athens", "Europe/Bucharest",
	"Asia/Nicosia", "Asia/Beirut", "Asia/Damascus", "Asia/Jerusalem", "Asia/Amman",
	"Africa/Tripoli", "Africa/Cairo", "Africa/Johannesburg", "Europe/Moscow",
	"Asia/Baghdad", "Asia/Kuwait", "Asia/Riyadh", "Asia/Bahrain", "Asia/Qatar",
	"Asia/Aden", "Asia/Tehran", "Africa/Khartoum", "Africa/Djibouti",
	"Africa/Mogadishu", "Asia/Dubai", "Asia/Muscat", "Asia/Baku", "Asia/Kabul",
	"Asia/Yekaterinburg", "Asia/Tashkent", "Asia/Calcutta", "Asia/Kathmandu",
	"Asia/Novosibirsk", "Asia/Almaty", "Asia/Dacca", "Asia/Krasnoyarsk",
	"Asia/Dhaka", "Asia/Bangkok", "Asia/Saigon", "Asia/Jakarta", "Asia/Irkutsk",
	"Asia/Shanghai", "Asia/Hong_Kong", "Asia/Taipei", "Asia/Kuala_Lumpur",
	"Asia/Singapore", "Australia/Perth", "Asia/Yakutsk", "Asia/Seoul", "Asia/Tokyo",
	"Australia/Darwin", "Australia/Adelaide", "Asia/Vladivostok",
	"Pacific/Port_Moresby", "Australia/Brisbane", "Australia/Sydney",
	"Australia/Hobart", "Asia/Magadan", "SST", "Pacific/Noumea", "Asia/Kamchatka",
	"Pacific/Fiji", "Pacific/Auckland", "Asia/Kolkata", "Europe/Kiev",
	"America/Tegucigalpa", "Pacific/Apia",
}

func init() {
	for _, tz := range zoomTimezoneNames {
		ZoomTimezones[tz] = struct{}{}
	}
}

// ZoomDialInCountries lists the ISO country codes Zoom supports for global
// dial-in numbers, used as the allowed values of the dial-in settings field.
var ZoomDialInCountries = []string{
	"AD", "AE", "AF", "AG", "AI", "AL", "AM", "AN", "AO", "AQ", "AR", "AS", "AT", "AU",
	"AW", "AX", "AZ", "BA", "BB", "BD", "BE", "BF", "BG", "BH", "BI", "BJ", "BM", "BN",
	"BO", "BR", "BS", "BT", "BV", "BW", "BY", "BZ", "CA", "CD", "CF", "CG", "CH", "CI",
	"CK", "CL", "CM", "CN", "CO", "CR", "CS", "CU", "CV", "CY", "CZ", "DE", "DJ", "DK",
	"DM", "DO", "DZ", "EC", "EE", "EG", "ER", "ES", "ET", "FI", "FJ", "FK", "FM", "FO",
	"FR", "GA", "GB", "GD", "GE", "GF", "GG", "GH", "GI", "GL", "GM", "GN", "GP", "GQ",
	"GR", "GS", "GT", "GU", "GW", "GY", "HK", "HN", "HR", "HT", "HU", "ID", "IE", "IL",
	"IM", "IN", "IO", "IQ", "IR", "IS", "IT", "JE", "JM", "JO", "JP", "KE", "KG", "KH",
	"KI", "KM", "KN", "KP", "KR", "KW", "KY", "KZ", "LA", "LB", "LC", "LI", "LK", "LR",
	"LS", "LT", "LU", "LV", "LY", "MA", "MC", "MD", "ME", "MF", "MG", "MH", "MK", "ML",
	"MM", "MN", "MO", "MP", "MQ", "MR", "MS", "MT", "MU", "MV", "MW", "MX", "MY", "MZ",
	"NA", "NC", "NE", "NF", "NG", "NI", "NL", "NO", "NP", "NR", "NU", "NZ", "OM", "PA",
	"PE", "PF", "PG", "PH", "PK", "PL", "PM", "PR", "PS", "PT", "PW", "PY", "QA", "RE",
	"RO", "RS", "RU", "RW", "SA", "SB", "SC", "SD", "SE", "SG", "SI", "SK", "SL", "SM",
	"SN", "SO", "SR", "SS", "ST", "SV", "SY", "SZ", "TC", "TD", "TF", "TG", "TH", "TJ",
	"TK", "TL", "TM", "TN", "TO", "TR", "TT", "TV", "TW", "TZ", "UA", "UG", "UK", "UM",
	"US", "UY", "UZ", "VA", "VC", "VE", "VG", "VI", "VN", "VU", "WF", "WS", "YE", "YT",
	"ZA", "ZM", "ZW",
}
