// Command qrdecode reads a QR code from a PNG or JPEG image and prints
// the decoded text, along with the version/ECC/mask diagnostics the
// core qrcode package reports.
package main

func main() {
	Execute()
}
