package bdeck

// Mock decks for parser tests, shaped like real ATCF b-deck files.
// mockLongDeck follows a western Pacific typhoon from genesis through
// extratropical transition, with radii continuation lines at the 50
// and 64 kt thresholds. mockShortDeck is a pre-2000 Atlantic deck
// that stops after the type code.

const mockLongDeck = `WP, 14, 2016090900,   , BEST,   0,  132N,  1337E,  35, 1000, TS,  34, NEQ,   90,   60,    0,   80, 1004,  200,   30,  45,   0,    ,   0,    ,    0,    0, MERANTI, M
WP, 14, 2016090906,   , BEST,   0,  134N,  1326E,  45,  996, TS,  34, NEQ,  100,   80,   40,   90, 1004,  210,   28,  55,   0,    ,   0,    ,    0,    0, MERANTI, M
WP, 14, 2016090912,   , BEST,   0,  136N,  1312E,  55,  985, TS,  34, NEQ,  120,   90,   50,  100, 1002,  220,   25,  70,   0,    ,   0,    ,    0,    0, MERANTI, M
WP, 14, 2016090912,   , BEST,   0,  136N,  1312E,  55,  985, TS,  50, NEQ,   60,   40,    0,   50, 1002,  220,   25,  70,   0,    ,   0,    ,    0,    0, MERANTI, M
WP, 14, 2016090918,   , BEST,   0,  138N,  1295E,  75,  970, TY,  34, NEQ,  140,  110,   70,  120, 1000,  240,   20,  90,   0,    ,   0,    ,    0,    0, MERANTI, M
WP, 14, 2016090918,   , BEST,   0,  138N,  1295E,  75,  970, TY,  50, NEQ,   80,   60,   30,   70, 1000,  240,   20,  90,   0,    ,   0,    ,    0,    0, MERANTI, M
WP, 14, 2016090918,   , BEST,   0,  138N,  1295E,  75,  970, TY,  64, NEQ,   40,   30,   15,   35, 1000,  240,   20,  90,   0,    ,   0,    ,    0,    0, MERANTI, M
WP, 14, 2016091000,   , BEST,   0,  141N,  1278E,  90,  950, TY,  34, NEQ,  160,  130,   90,  140,  998,  260,   15, 110,   0,    ,   0,    ,    0,    0, MERANTI, D
WP, 14, 2016091000,   , BEST,   0,  141N,  1278E,  90,  950, TY,  50, NEQ,   90,   70,   40,   80,  998,  260,   15, 110,   0,    ,   0,    ,    0,    0, MERANTI, D
WP, 14, 2016091000,   , BEST,   0,  141N,  1278E,  90,  950, TY,  64, NEQ,   50,   35,   20,   45,  998,  260,   15, 110,   0,    ,   0,    ,    0,    0, MERANTI, D
WP, 14, 2016091006,   , BEST,   0,  144N,  1262E,  90,  950, TY,  34, NEQ,  160,  130,   90,  140,  998,  260,   15, 110,   0,    ,   0,    ,    0,    0, MERANTI, D
WP, 14, 2016091006,   , BEST,   0,  144N,  1262E,  90,  950, TY,  50, NEQ,   90,   70,   40,   80,  998,  260,   15, 110,   0,    ,   0,    ,    0,    0, MERANTI, D
WP, 14, 2016091006,   , BEST,   0,  144N,  1262E,  90,  950, TY,  64, NEQ,   50,   35,   20,   45,  998,  260,   15, 110,   0,    ,   0,    ,    0,    0, MERANTI, D
WP, 14, 2016091012,   , BEST,   0,  149N,  1250E,  55,  985, TS,  34, NEQ,  130,  100,   60,  110, 1000,  230,   25,  70,   0,    ,   0,    ,    0,    0, MERANTI, M
WP, 14, 2016091012,   , BEST,   0,  149N,  1250E,  55,  985, TS,  50, NEQ,   70,   50,   20,   60, 1000,  230,   25,  70,   0,    ,   0,    ,    0,    0, MERANTI, M
WP, 14, 2016091018,   , BEST,   0,  155N,  1243E,  35, 1000, EX,  34, NEQ,  110,   90,   60,  100, 1004,  220,   40,  45,   0,    ,   0,    ,    0,    0, MERANTI, S
`

const mockShortDeck = `AL, 09, 1997090312,   , BEST,   0,  311N,   766W,  25, 1008, TD
AL, 09, 1997090318,   , BEST,   0,  315N,   772W,  30, 1006, TD
AL, 09, 1997090400,   , BEST,   0,  320N,   778W,  35, 1004, TS
AL, 09, 1997090406,   , BEST,   0,  326N,   783W,  45, 1000, TS
AL, 09, 1997090415,   , BEST,   0,  330N,   786W,  45,  999, TS
`

// mockMinimalDeck stops at the wind field, so records carry neither
// pressure nor a type code.
const mockMinimalDeck = `AL, 03, 1988080100,   , BEST,   0,  121N,   452W,  20
AL, 03, 1988080106,   , BEST,   0,  124N,   461W,  25
AL, 03, 1988080112,   , BEST,   0,  128N,   470W,  40
`

// mockMismatchDeck reports 55 kt without a 50-kt continuation line:
// the lookahead consumes the next fix and discards it.
const mockMismatchDeck = `WP, 02, 2015010100,   , BEST,   0,   80N,  1520E,  55,  990, TS,  34, NEQ,  100,   80,   40,   90, 1002,  200,   25,  70,   0,    ,   0,    ,    0,    0, MALAKAS, M
WP, 02, 2015010106,   , BEST,   0,   84N,  1512E,  45,  996, TS,  34, NEQ,   90,   70,   30,   80, 1004,  200,   30,  55,   0,    ,   0,    ,    0,    0, MALAKAS, M
WP, 02, 2015010112,   , BEST,   0,   88N,  1504E,  30, 1004, TD,   0,    ,    0,    0,    0,    0, 1006,  180,   40,  40,   0,    ,   0,    ,    0,    0, MALAKAS, M
`

// mockNatureDeck mixes tropical and non-tropical type codes; winds
// stay below 50 kt so no continuation lines are involved.
const mockNatureDeck = `AL, 17, 2020101500,   , BEST,   0,  305N,   520W,  40, 1000, TS,  34, NEQ,   80,   60,   30,   70, 1006,  180,   35,  50,   0,    ,   0,    ,    0,    0, INVEST, M
AL, 17, 2020101506,   , BEST,   0,  312N,   512W,  40, 1000, SS,  34, NEQ,   80,   60,   30,   70, 1006,  180,   35,  50,   0,    ,   0,    ,    0,    0, INVEST, M
AL, 17, 2020101512,   , BEST,   0,  320N,   505W,  45,  998, TS,  34, NEQ,   90,   70,   40,   80, 1006,  190,   30,  55,   0,    ,   0,    ,    0,    0, INVEST, M
AL, 17, 2020101518,   , BEST,   0,  330N,   495W,  45,  996, EX,  34, NEQ,  100,   80,   50,   90, 1004,  200,   40,  55,   0,    ,   0,    ,    0,    0, INVEST, M
`
