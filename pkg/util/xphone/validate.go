package xphone

import "regexp"

var (
	reAllNumber        = regexp.MustCompile(PatternAllNumber)
	reAllNumberWithSMS = regexp.MustCompile(PatternAllNumberWithSMS)

	reAllPhone     = regexp.MustCompile(PatternAllPhone)
	reMobilePhone  = regexp.MustCompile(PatternMobilePhone)
	reUnicomPhone  = regexp.MustCompile(PatternUnicomPhone)
	reTelecomPhone = regexp.MustCompile(PatternTelecomPhone)
	reCBNPhone     = regexp.MustCompile(PatternCBNPhone)
	reSCPhone      = regexp.MustCompile(PatternSCPhone)
	reECCPhone     = regexp.MustCompile(PatternECCPhone)

	reAllMVNO     = regexp.MustCompile(PatternAllMVNO)
	reMobileMVNO  = regexp.MustCompile(PatternMobileMVNO)
	reUnicomMVNO  = regexp.MustCompile(PatternUnicomMVNO)
	reTelecomMVNO = regexp.MustCompile(PatternTelecomMVNO)

	reAllIoT     = regexp.MustCompile(PatternAllIoT)
	reMobileIoT  = regexp.MustCompile(PatternMobileIoT)
	reUnicomIoT  = regexp.MustCompile(PatternUnicomIoT)
	reTelecomIoT = regexp.MustCompile(PatternTelecomIoT)

	reAllData     = regexp.MustCompile(PatternAllData)
	reMobileData  = regexp.MustCompile(PatternMobileData)
	reUnicomData  = regexp.MustCompile(PatternUnicomData)
	reTelecomData = regexp.MustCompile(PatternTelecomData)
)

// IsAllNumber 报告 phone 是否为任意类别的号码（手机、上网卡、物联网）。
func IsAllNumber(phone string) bool { return reAllNumber.MatchString(phone) }

// IsAllNumberWithSMS 报告 phone 是否为可接收短信的号码（手机、上网卡）。
func IsAllNumberWithSMS(phone string) bool { return reAllNumberWithSMS.MatchString(phone) }

// IsAllPhoneNumber 报告 phone 是否为任意运营商的手机号码。
func IsAllPhoneNumber(phone string) bool { return reAllPhone.MatchString(phone) }

// IsChinaMobilePhoneNumber 报告 phone 是否为中国移动手机号码。
func IsChinaMobilePhoneNumber(phone string) bool { return reMobilePhone.MatchString(phone) }

// IsChinaUnicomPhoneNumber 报告 phone 是否为中国联通手机号码。
func IsChinaUnicomPhoneNumber(phone string) bool { return reUnicomPhone.MatchString(phone) }

// IsChinaTelecomPhoneNumber 报告 phone 是否为中国电信手机号码。
func IsChinaTelecomPhoneNumber(phone string) bool { return reTelecomPhone.MatchString(phone) }

// IsChinaCBNPhoneNumber 报告 phone 是否为中国广电手机号码。
func IsChinaCBNPhoneNumber(phone string) bool { return reCBNPhone.MatchString(phone) }

// IsChinaSCPhoneNumber 报告 phone 是否为卫星通信号码。
func IsChinaSCPhoneNumber(phone string) bool { return reSCPhone.MatchString(phone) }

// IsChinaECCPhoneNumber 报告 phone 是否为应急通信号码。
func IsChinaECCPhoneNumber(phone string) bool { return reECCPhone.MatchString(phone) }

// IsAllMVNONumber 报告 phone 是否为虚拟运营商号码。
func IsAllMVNONumber(phone string) bool { return reAllMVNO.MatchString(phone) }

// IsChinaMobileMVNONumber 报告 phone 是否为中国移动虚拟运营商号码。
func IsChinaMobileMVNONumber(phone string) bool { return reMobileMVNO.MatchString(phone) }

// IsChinaUnicomMVNONumber 报告 phone 是否为中国联通虚拟运营商号码。
func IsChinaUnicomMVNONumber(phone string) bool { return reUnicomMVNO.MatchString(phone) }

// IsChinaTelecomMVNONumber 报告 phone 是否为中国电信虚拟运营商号码。
func IsChinaTelecomMVNONumber(phone string) bool { return reTelecomMVNO.MatchString(phone) }

// IsAllIoTNumber 报告 phone 是否为物联网号码。
func IsAllIoTNumber(phone string) bool { return reAllIoT.MatchString(phone) }

// IsChinaMobileIoTNumber 报告 phone 是否为中国移动物联网号码。
func IsChinaMobileIoTNumber(phone string) bool { return reMobileIoT.MatchString(phone) }

// IsChinaUnicomIoTNumber 报告 phone 是否为中国联通物联网号码。
func IsChinaUnicomIoTNumber(phone string) bool { return reUnicomIoT.MatchString(phone) }

// IsChinaTelecomIoTNumber 报告 phone 是否为中国电信物联网号码。
func IsChinaTelecomIoTNumber(phone string) bool { return reTelecomIoT.MatchString(phone) }

// IsAllDataNumber 报告 phone 是否为数据上网卡号码。
func IsAllDataNumber(phone string) bool { return reAllData.MatchString(phone) }

// IsChinaMobileDataNumber 报告 phone 是否为中国移动上网卡号码。
func IsChinaMobileDataNumber(phone string) bool { return reMobileData.MatchString(phone) }

// IsChinaUnicomDataNumber 报告 phone 是否为中国联通上网卡号码。
func IsChinaUnicomDataNumber(phone string) bool { return reUnicomData.MatchString(phone) }

// IsChinaTelecomDataNumber 报告 phone 是否为中国电信上网卡号码。
func IsChinaTelecomDataNumber(phone string) bool { return reTelecomData.MatchString(phone) }
