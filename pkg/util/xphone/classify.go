package xphone

import "regexp"

// Category 号码类别。
type Category uint8

const (
	CategoryUnknown Category = iota
	CategoryPhone
	CategoryMVNO
	CategoryIoT
	CategoryData
)

// String 返回类别名称。
func (c Category) String() string {
	switch c {
	case CategoryPhone:
		return "phone"
	case CategoryMVNO:
		return "mvno"
	case CategoryIoT:
		return "iot"
	case CategoryData:
		return "data"
	default:
		return "unknown"
	}
}

// Carrier 运营商。
type Carrier uint8

const (
	CarrierUnknown Carrier = iota
	CarrierMobile
	CarrierUnicom
	CarrierTelecom
	CarrierCBN
	CarrierSC
	CarrierECC
)

// String 返回运营商名称。
func (c Carrier) String() string {
	switch c {
	case CarrierMobile:
		return "mobile"
	case CarrierUnicom:
		return "unicom"
	case CarrierTelecom:
		return "telecom"
	case CarrierCBN:
		return "cbn"
	case CarrierSC:
		return "sc"
	case CarrierECC:
		return "ecc"
	default:
		return "unknown"
	}
}

type carrierRule struct {
	re      *regexp.Regexp
	carrier Carrier
}

type categoryRule struct {
	all      *regexp.Regexp
	category Category
	carriers []carrierRule
}

// 各类别号段互不重叠，按此顺序逐一尝试。
var classifyRules = []categoryRule{
	{reAllPhone, CategoryPhone, []carrierRule{
		{reMobilePhone, CarrierMobile},
		{reUnicomPhone, CarrierUnicom},
		{reTelecomPhone, CarrierTelecom},
		{reCBNPhone, CarrierCBN},
		{reSCPhone, CarrierSC},
		{reECCPhone, CarrierECC},
	}},
	{reAllMVNO, CategoryMVNO, []carrierRule{
		{reMobileMVNO, CarrierMobile},
		{reUnicomMVNO, CarrierUnicom},
		{reTelecomMVNO, CarrierTelecom},
	}},
	{reAllIoT, CategoryIoT, []carrierRule{
		{reMobileIoT, CarrierMobile},
		{reUnicomIoT, CarrierUnicom},
		{reTelecomIoT, CarrierTelecom},
	}},
	{reAllData, CategoryData, []carrierRule{
		{reMobileData, CarrierMobile},
		{reUnicomData, CarrierUnicom},
		{reTelecomData, CarrierTelecom},
	}},
}

// Classify 返回 phone 所属的类别和运营商。
//
// 号码属于某类别但号段未分配给具体运营商时，运营商为 [CarrierUnknown]；
// 不属于任何类别时返回 ([CategoryUnknown], [CarrierUnknown])。
func Classify(phone string) (Category, Carrier) {
	for _, rule := range classifyRules {
		if !rule.all.MatchString(phone) {
			continue
		}
		for _, c := range rule.carriers {
			if c.re.MatchString(phone) {
				return rule.category, c.carrier
			}
		}
		return rule.category, CarrierUnknown
	}
	return CategoryUnknown, CarrierUnknown
}
