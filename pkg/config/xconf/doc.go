// Package xconf 加载工具集的声明式配置，基于 koanf 实现。
//
// # 两层 API
//
// 底层 [Config] 是通用的 koanf 封装：[New] 从文件加载，[NewFromBytes] 从字节加载，
// 支持并发安全的 Reload 与按路径 Unmarshal。
//
// 上层 [Settings] 聚合各包的配置：
//
//	size:
//	  system: si
//	  places: 3
//	  locale: de
//	client_ip:
//	  headers: [CF-Connecting-IP, X-Forwarded-For]
//	log:
//	  level: debug
//	  format: json
//	  file: /var/log/app.log
//	  rotation:
//	    max_size_mb: 50
//
// [Load] 和 [LoadBytes] 先写入 [DefaultSettings]，再以文件内容覆盖，最后校验。
// 文件中未出现的字段保持默认值。
//
// # 支持的格式
//
//   - YAML：.yaml, .yml
//   - JSON：.json
//
// # 并发安全
//
// Reload 通过互斥锁串行化，解析成功后原子替换 koanf 实例；解析失败时保留旧配置。
// Client() 返回的指针在 Reload 后仍可用，但指向旧快照，不要长期持有。
//
// # 配置监视
//
// [Watch] 和 [WatchSettings] 基于 fsnotify 监视配置文件所在目录，
// 支持编辑器的原子写入（写临时文件后 rename），内置防抖。
// Stop 之后不会再触发新的回调。
package xconf
