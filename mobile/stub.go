//go:build !mobile

// stub.go - 桌面端构建时的占位文件
//
// 绑定入口 init() 和嵌入的 data/game.yaml 只在 -tags mobile 时编译，
// 普通的 go build ./... 只会看到这个文件。
package mobile

// Dummy 与移动端构建导出同名函数，保证 ./mobile 在两种构建下都能被引用
func Dummy() {}
