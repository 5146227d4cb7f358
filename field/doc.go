// Package field implements typed values for common HTTP header fields on
// top of the codec protocol from the headers package.
//
// Every type here binds itself to one canonical field name and is read and
// written through [headers.Get] and [headers.Set] only.
package field
