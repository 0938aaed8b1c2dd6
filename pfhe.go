/*
Package pfhe is a cryptographic library implementing a partially homomorphic
encryption scheme over the rational numbers. The library features:

  - A pure Go implementation enabling code-simplicity and easy builds.
  - Rational arithmetic carried inside modular residue rings via p-adic
    Hensel codes and Chinese-Remainder lifting.
  - Ciphertext addition and multiplication through the underlying residue
    ring, with explicit, seedable randomness for reproducible encryption.
*/
package pfhe

// Version is the current version of the pfhe library.
const Version = "0.1.0"
