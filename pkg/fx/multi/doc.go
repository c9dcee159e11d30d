// Package multi combines several outcomes into one.
//
// All demands every entry succeed and reports the first failure by
// position. Any takes the first success and, when everything fails,
// the last failure. Zip and Zip3 pair up values left to right. The
// first-vs-last asymmetry between All and Any is intentional,
// observable policy.
package multi
