// Package fancyip builds IP and socket addresses from their textual form.
//
// Calls such as
//
//	fancyip.SocketV6("[::1]:3000", 58, 30)
//
// parse their argument at run time. Running the fancyip generator over a file
// rewrites every such call into a constant constructor call, rejecting malformed
// addresses before the program is built:
//
//	fancyip.NewSocketV6(fancyip.NewIPv6(0, 0, 0, 0, 0, 0, 0, 1), 3000, 58, 30)
package fancyip
