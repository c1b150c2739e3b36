// Package cuberobot turns hand-entered Rubik's cube facelet colors into a
// cube-state string, obtains a solution from an external solver and prepares
// move sequences for a serial-driven solving rig.
//
// # Quick Start
//
//	s := cuberobot.NewSession()
//	for _, slot := range cuberobot.Slots {
//	    if err := s.SetFaceHex(slot, readNineColors(slot)); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
//	solution, err := s.Solve(ctx, solver, cuberobot.Kociemba)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	undo, _ := s.ReversedMoves()
//	fmt.Println(solution, undo)
//
// # Move Inversion
//
// Invert reverses a move sequence and flips each turn:
//
//	cuberobot.Invert("RU")    // "U'R'"
//	cuberobot.Invert("R2 F'") // "FR2"
//
// Input is validated token by token first; a modifier without a face letter
// is an error rather than being glued to a neighbour.
//
// # Cube State
//
// The state string lists 54 color labels (w, r, y, g, o, b), nine per face,
// in the slot order yellow, blue, red, green, orange, white. Validate checks
// the length and that every color occurs exactly nine times.
//
// # Simulation
//
// Cube is a facelet simulator used to check sequences without hardware:
//
//	c := cuberobot.NewCube()
//	moves, _ := cuberobot.ParseMoves("R U R' U'")
//	c.ApplyMoves(moves)
//	c.ApplyMoves(cuberobot.InvertMoves(moves))
//	fmt.Println(c.IsSolved()) // true
package cuberobot
