package hensel

// CRT lifts two Hensel codes (g1, n1) and (g2, n2) with coprime moduli to
// the unique code (g1*g2, n) with n = n1 (mod g1) and n = n2 (mod g2).
//
// Coprimality of the moduli is an unchecked precondition: violating it
// yields an unspecified residue. The limb width of the result is the sum of
// the operand widths, so the double-width intermediate products are exact.
func CRT(a, b Code) Code {

	g1, n1 := a.g, a.n
	g2, n2 := b.g, b.n

	w := g1.Limbs() + g2.Limbs()

	g12 := g1.Resize(w).Mul(g2.Resize(w))

	// i1*g1 = 1 (mod g2), i2*g2 = 1 (mod g1)
	i1, ok1 := g1.Mod(g2).ModInverse(g2)
	i2, ok2 := g2.Mod(g1).ModInverse(g1)

	if !ok1 || !ok2 {
		// Sanity check: reachable only when the coprimality precondition
		// is violated, i.e. the moduli share a factor.
		return Zero(g12)
	}

	// lift everything to Z/(g1*g2)Z and widen once more for the products
	w2 := 2 * w

	t1 := g1.Resize(w2).Mul(i1.Resize(w2)).Mul(n2.Resize(w2)).Mod(g12)
	t2 := g2.Resize(w2).Mul(i2.Resize(w2)).Mul(n1.Resize(w2)).Mod(g12)

	return NewCode(g12, t1.Resize(w+1).Add(t2.Resize(w+1)).Mod(g12))
}
