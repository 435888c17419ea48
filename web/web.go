// Package web 内嵌的静态页面
//
// 页面随二进制一起发布，启动时不需要再读磁盘。
package web

import _ "embed"

var (
	//go:embed client.html
	Index []byte

	//go:embed style.css
	Style []byte

	//go:embed doc.html
	Doc []byte
)
