package models

import "strings"

// supportedCurrencies lists the codes accepted by exchangerate-api.com.
var supportedCurrencies = map[string]struct{}{}

func init() {
	for _, code := range strings.Fields(`
		RUB AED AFN ALL AMD ANG AOA ARS AUD AWG AZN BAM BBD BDT BGN BHD
		BIF BMD BND BOB BRL BSD BTN BWP BYN BZD CAD CDF CHF CLP CNY COP
		CRC CUP CVE CZK DJF DKK DOP DZD EGP ERN ETB EUR FJD FKP FOK GBP
		GEL GGP GHS GIP GMD GNF GTQ GYD HKD HNL HRK HTG HUF IDR ILS IMP
		INR IQD IRR ISK JEP JMD JOD JPY KES KGS KHR KID KMF KRW KWD KYD
		KZT LAK LBP LKR LRD LSL LYD MAD MDL MGA MKD MMK MNT MOP MRU MUR
		MVR MWK MXN MYR MZN NAD NGN NIO NOK NPR NZD OMR PAB PEN PGK PHP
		PKR PLN PYG QAR RON RSD RWF SAR SBD SCR SDG SEK SGD SHP SLE SLL
		SOS SRD SSP STN SYP SZL THB TJS TMT TND TOP TRY TTD TVD TWD TZS
		UAH UGX USD UYU UZS VES VND VUV WST XAF XCD XCG XDR XOF XPF YER
		ZAR ZMW ZWL`) {
		supportedCurrencies[code] = struct{}{}
	}
}

// NormalizeCurrency trims and upper-cases a currency code.
func NormalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsSupportedCurrency reports whether code is a normalized supported code.
func IsSupportedCurrency(code string) bool {
	_, ok := supportedCurrencies[code]
	return ok
}
