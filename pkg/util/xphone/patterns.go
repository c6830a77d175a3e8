package xphone

// 全部号码。
const (
	// PatternAllNumber 手机号码 + 上网卡 + 物联网号码。
	PatternAllNumber = `^(?:\+?86)?1(?:3\d{3}|5[^4\D]\d{2}|8\d{3}|7(?:[0-35-9]\d{2}|4(?:0\d|1[0-2]|9\d))|9[0-35-9]\d{2}|6[2567]\d{2}|4(?:(?:10|4[01])\d{3}|[68]\d{4}|[579]\d{2}))\d{6}$`

	// PatternAllNumberWithSMS 可接收短信的号码：手机号码 + 上网卡。
	PatternAllNumberWithSMS = `^(?:\+?86)?1(?:3\d{3}|5[^4\D]\d{2}|8\d{3}|7(?:[0-35-9]\d{2}|4(?:0\d|1[0-2]|9\d))|9[0-35-9]\d{2}|6[2567]\d{2}|4[579]\d{2})\d{6}$`
)

// 手机号码。
const (
	// PatternAllPhone 全部运营商的手机号码（不含虚拟运营商）。
	PatternAllPhone = `^(?:\+?86)?1(?:3\d{3}|5[^4\D]\d{2}|8\d{3}|7(?:[235-8]\d{2}|4(?:0\d|1[0-2]|9\d))|9[0-35-9]\d{2}|66\d{2})\d{6}$`

	// PatternMobilePhone 中国移动。
	PatternMobilePhone = `^(?:\+?86)?1(?:3(?:4[^9\D]|[5-9]\d)|5[^3-6\D]\d|7[28]\d|8[23478]\d|9[578]\d)\d{7}$`

	// PatternUnicomPhone 中国联通。
	PatternUnicomPhone = `^(?:\+?86)?1(?:3[0-2]|[578][56]|66|96)\d{8}$`

	// PatternTelecomPhone 中国电信。
	PatternTelecomPhone = `^(?:\+?86)?1(?:3(?:3\d|49)\d|53\d{2}|8[019]\d{2}|7(?:[37]\d{2}|40[0-5])|9[0139]\d{2})\d{6}$`

	// PatternCBNPhone 中国广电。
	PatternCBNPhone = `^(?:\+?86)?192\d{8}$`

	// PatternSCPhone 卫星通信（1749）。
	PatternSCPhone = `^(?:\+?86)?1749\d{7}$`

	// PatternECCPhone 应急通信（1740[6-9]、1741[0-2]）。
	PatternECCPhone = `^(?:\+?86)?174(?:0[6-9]|1[0-2])\d{6}$`
)

// 虚拟运营商号码。
const (
	PatternAllMVNO     = `^(?:\+?86)?1(?:7[01]|6[257])\d{8}$`
	PatternMobileMVNO  = `^(?:\+?86)?1(?:65\d|70[356])\d{7}$`
	PatternUnicomMVNO  = `^(?:\+?86)?1(?:70[4789]|71\d|67\d)\d{7}$`
	PatternTelecomMVNO = `^(?:\+?86)?1(?:70[012]|62\d)\d{7}$`
)

// 物联网号码（13 位）。
const (
	PatternAllIoT     = `^(?:\+?86)?14(?:[14]0|41|[68]\d)\d{9}$`
	PatternMobileIoT  = `^(?:\+?86)?14(?:4[01]|8\d)\d{9}$`
	PatternUnicomIoT  = `^(?:\+?86)?146\d{10}$`
	PatternTelecomIoT = `^(?:\+?86)?1410\d{9}$`
)

// 数据上网卡号码。
const (
	PatternAllData     = `^(?:\+?86)?14[579]\d{8}$`
	PatternMobileData  = `^(?:\+?86)?147\d{8}$`
	PatternUnicomData  = `^(?:\+?86)?145\d{8}$`
	PatternTelecomData = `^(?:\+?86)?149\d{8}$`
)
