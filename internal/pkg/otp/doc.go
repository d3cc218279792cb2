// Package otp provides helpers for generating one-time passcodes (OTP).
//
// Codes are short-lived numeric credentials used to prove control of an
// email or phone channel: generate a code, deliver it out of band, then
// compare against the user-provided value.
package otp
