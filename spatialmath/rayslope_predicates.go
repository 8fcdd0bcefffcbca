package spatialmath

// Predicates for every non-degenerate ray class, named by the sign of the x, y and z direction
// components (M negative, O zero, P positive).
//
// An axis the ray does not move along requires the origin to lie within the box on that axis. An
// axis it does move along requires the origin not to be past the box's far face. For every ordered
// pair of moving axes (a, b) the projected ray, evaluated where it leaves the box's a slab, must
// already have entered the b slab: sab*exit(a)+cab is at most max(b) when travelling towards -b
// and at least min(b) when travelling towards +b. exit(a) is min(a) for M and max(a) for P.

func testMMM(r *RayBoxTester, minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.x >= minX && r.y >= minY && r.z >= minZ &&
		r.sxy*minX+r.cxy <= maxY &&
		r.syx*minY+r.cyx <= maxX &&
		r.syz*minY+r.cyz <= maxZ &&
		r.szy*minZ+r.czy <= maxY &&
		r.sxz*minX+r.cxz <= maxZ &&
		r.szx*minZ+r.czx <= maxX
}

func testOMM(r *RayBoxTester, minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return minX <= r.x && r.x <= maxX && r.y >= minY && r.z >= minZ &&
		r.syz*minY+r.cyz <= maxZ &&
		r.szy*minZ+r.czy <= maxY
}

func testPMM(r *RayBoxTester, minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.x <= maxX && r.y >= minY && r.z >= minZ &&
		r.sxy*maxX+r.cxy <= maxY &&
		r.syx*minY+r.cyx >= minX &&
		r.syz*minY+r.cyz <= maxZ &&
		r.szy*minZ+r.czy <= maxY &&
		r.sxz*maxX+r.cxz <= maxZ &&
		r.szx*minZ+r.czx >= minX
}

func testMOM(r *RayBoxTester, minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.x >= minX && minY <= r.y && r.y <= maxY && r.z >= minZ &&
		r.sxz*minX+r.cxz <= maxZ &&
		r.szx*minZ+r.czx <= maxX
}

func testOOM(r *RayBoxTester, minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return minX <= r.x && r.x <= maxX && minY <= r.y && r.y <= maxY && r.z >= minZ
}

func testPOM(r *RayBoxTester, minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.x <= maxX && minY <= r.y && r.y <= maxY && r.z >= minZ &&
		r.sxz*maxX+r.cxz <= maxZ &&
		r.szx*minZ+r.czx >= minX
}

func testMPM(r *RayBoxTester, minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.x >= minX && r.y <= maxY && r.z >= minZ &&
		r.sxy*minX+r.cxy >= minY &&
		r.syx*maxY+r.cyx <= maxX &&
		r.syz*maxY+r.cyz <= maxZ &&
		r.szy*minZ+r.czy >= minY &&
		r.sxz*minX+r.cxz <= maxZ &&
		r.szx*minZ+r.czx <= maxX
}

func testOPM(r *RayBoxTester, minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return minX <= r.x && r.x <= maxX && r.y <= maxY && r.z >= minZ &&
		r.syz*maxY+r.cyz <= maxZ &&
		r.szy*minZ+r.czy >= minY
}

func testPPM(r *RayBoxTester, minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.x <= maxX && r.y <= maxY && r.z >= minZ &&
		r.sxy*maxX+r.cxy >= minY &&
		r.syx*maxY+r.cyx >= minX &&
		r.syz*maxY+r.cyz <= maxZ &&
		r.szy*minZ+r.czy >= minY &&
		r.sxz*maxX+r.cxz <= maxZ &&
		r.szx*minZ+r.czx >= minX
}

func testMMO(r *RayBoxTester, minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.x >= minX && r.y >= minY && minZ <= r.z && r.z <= maxZ &&
		r.sxy*minX+r.cxy <= maxY &&
		r.syx*minY+r.cyx <= maxX
}

func testOMO(r *RayBoxTester, minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return minX <= r.x && r.x <= maxX && r.y >= minY && minZ <= r.z && r.z <= maxZ
}

func testPMO(r *RayBoxTester, minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.x <= maxX && r.y >= minY && minZ <= r.z && r.z <= maxZ &&
		r.sxy*maxX+r.cxy <= maxY &&
		r.syx*minY+r.cyx >= minX
}

func testMOO(r *RayBoxTester, minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.x >= minX && minY <= r.y && r.y <= maxY && minZ <= r.z && r.z <= maxZ
}

func testPOO(r *RayBoxTester, minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.x <= maxX && minY <= r.y && r.y <= maxY && minZ <= r.z && r.z <= maxZ
}

func testMPO(r *RayBoxTester, minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.x >= minX && r.y <= maxY && minZ <= r.z && r.z <= maxZ &&
		r.sxy*minX+r.cxy >= minY &&
		r.syx*maxY+r.cyx <= maxX
}

func testOPO(r *RayBoxTester, minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return minX <= r.x && r.x <= maxX && r.y <= maxY && minZ <= r.z && r.z <= maxZ
}

func testPPO(r *RayBoxTester, minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.x <= maxX && r.y <= maxY && minZ <= r.z && r.z <= maxZ &&
		r.sxy*maxX+r.cxy >= minY &&
		r.syx*maxY+r.cyx >= minX
}

func testMMP(r *RayBoxTester, minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.x >= minX && r.y >= minY && r.z <= maxZ &&
		r.sxy*minX+r.cxy <= maxY &&
		r.syx*minY+r.cyx <= maxX &&
		r.syz*minY+r.cyz >= minZ &&
		r.szy*maxZ+r.czy <= maxY &&
		r.sxz*minX+r.cxz >= minZ &&
		r.szx*maxZ+r.czx <= maxX
}

func testOMP(r *RayBoxTester, minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return minX <= r.x && r.x <= maxX && r.y >= minY && r.z <= maxZ &&
		r.syz*minY+r.cyz >= minZ &&
		r.szy*maxZ+r.czy <= maxY
}

func testPMP(r *RayBoxTester, minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.x <= maxX && r.y >= minY && r.z <= maxZ &&
		r.sxy*maxX+r.cxy <= maxY &&
		r.syx*minY+r.cyx >= minX &&
		r.syz*minY+r.cyz >= minZ &&
		r.szy*maxZ+r.czy <= maxY &&
		r.sxz*maxX+r.cxz >= minZ &&
		r.szx*maxZ+r.czx >= minX
}

func testMOP(r *RayBoxTester, minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.x >= minX && minY <= r.y && r.y <= maxY && r.z <= maxZ &&
		r.sxz*minX+r.cxz >= minZ &&
		r.szx*maxZ+r.czx <= maxX
}

func testOOP(r *RayBoxTester, minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return minX <= r.x && r.x <= maxX && minY <= r.y && r.y <= maxY && r.z <= maxZ
}

func testPOP(r *RayBoxTester, minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.x <= maxX && minY <= r.y && r.y <= maxY && r.z <= maxZ &&
		r.sxz*maxX+r.cxz >= minZ &&
		r.szx*maxZ+r.czx >= minX
}

func testMPP(r *RayBoxTester, minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.x >= minX && r.y <= maxY && r.z <= maxZ &&
		r.sxy*minX+r.cxy >= minY &&
		r.syx*maxY+r.cyx <= maxX &&
		r.syz*maxY+r.cyz >= minZ &&
		r.szy*maxZ+r.czy >= minY &&
		r.sxz*minX+r.cxz >= minZ &&
		r.szx*maxZ+r.czx <= maxX
}

func testOPP(r *RayBoxTester, minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return minX <= r.x && r.x <= maxX && r.y <= maxY && r.z <= maxZ &&
		r.syz*maxY+r.cyz >= minZ &&
		r.szy*maxZ+r.czy >= minY
}

func testPPP(r *RayBoxTester, minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.x <= maxX && r.y <= maxY && r.z <= maxZ &&
		r.sxy*maxX+r.cxy >= minY &&
		r.syx*maxY+r.cyx >= minX &&
		r.syz*maxY+r.cyz >= minZ &&
		r.szy*maxZ+r.czy >= minY &&
		r.sxz*maxX+r.cxz >= minZ &&
		r.szx*maxZ+r.czx >= minX
}
