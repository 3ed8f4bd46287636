package caps

// The tables below list the standard capabilities in the order their values
// appear in a compiled entry. A compiled entry may carry fewer values than a
// table has names; it never carries values for names beyond the table.

// Booleans are the boolean capabilities.
var Booleans = []Name{
	{"auto_left_margin", "bw"},          // 0
	{"auto_right_margin", "am"},         // 1
	{"no_esc_ctlc", "xsb"},              // 2
	{"ceol_standout_glitch", "xhp"},     // 3
	{"eat_newline_glitch", "xenl"},      // 4
	{"erase_overstrike", "eo"},          // 5
	{"generic_type", "gn"},              // 6
	{"hard_copy", "hc"},                 // 7
	{"has_meta_key", "km"},              // 8
	{"has_status_line", "hs"},           // 9
	{"insert_null_glitch", "in"},        // 10
	{"memory_above", "da"},              // 11
	{"memory_below", "db"},              // 12
	{"move_insert_mode", "mir"},         // 13
	{"move_standout_mode", "msgr"},      // 14
	{"over_strike", "os"},               // 15
	{"status_line_esc_ok", "eslok"},     // 16
	{"dest_tabs_magic_smso", "xt"},      // 17
	{"tilde_glitch", "hz"},              // 18
	{"transparent_underline", "ul"},     // 19
	{"xon_xoff", "xon"},                 // 20
	{"needs_xon_xoff", "nxon"},          // 21
	{"prtr_silent", "mc5i"},             // 22
	{"hard_cursor", "chts"},             // 23
	{"non_rev_rmcup", "nrrmc"},          // 24
	{"no_pad_char", "npc"},              // 25
	{"non_dest_scroll_region", "ndscr"}, // 26
	{"can_change", "ccc"},               // 27
	{"back_color_erase", "bce"},         // 28
	{"hue_lightness_saturation", "hls"}, // 29
	{"col_addr_glitch", "xhpa"},         // 30
	{"cr_cancels_micro_mode", "crxm"},   // 31
	{"has_print_wheel", "daisy"},        // 32
	{"row_addr_glitch", "xvpa"},         // 33
	{"semi_auto_right_margin", "sam"},   // 34
	{"cpi_changes_res", "cpix"},         // 35
	{"lpi_changes_res", "lpix"},         // 36
	{"backspaces_with_bs", "OTbs"},      // 37
	{"crt_no_scrolling", "OTns"},        // 38
	{"no_correctly_working_cr", "OTnc"}, // 39
	{"gnu_has_meta_key", "OTMT"},        // 40
	{"linefeed_is_newline", "OTNL"},     // 41
	{"has_hardware_tabs", "OTpt"},       // 42
	{"return_does_clr_eol", "OTxr"},     // 43
}

// Numbers are the numeric capabilities.
var Numbers = []Name{
	{"columns", "cols"},                 // 0
	{"init_tabs", "it"},                 // 1
	{"lines", "lines"},                  // 2
	{"lines_of_memory", "lm"},           // 3
	{"magic_cookie_glitch", "xmc"},      // 4
	{"padding_baud_rate", "pb"},         // 5
	{"virtual_terminal", "vt"},          // 6
	{"width_status_line", "wsl"},        // 7
	{"num_labels", "nlab"},              // 8
	{"label_height", "lh"},              // 9
	{"label_width", "lw"},               // 10
	{"max_attributes", "ma"},            // 11
	{"maximum_windows", "wnum"},         // 12
	{"max_colors", "colors"},            // 13
	{"max_pairs", "pairs"},              // 14
	{"no_color_video", "ncv"},           // 15
	{"buffer_capacity", "bufsz"},        // 16
	{"dot_vert_spacing", "spinv"},       // 17
	{"dot_horz_spacing", "spinh"},       // 18
	{"max_micro_address", "maddr"},      // 19
	{"max_micro_jump", "mjump"},         // 20
	{"micro_col_size", "mcs"},           // 21
	{"micro_line_size", "mls"},          // 22
	{"number_of_pins", "npins"},         // 23
	{"output_res_char", "orc"},          // 24
	{"output_res_line", "orl"},          // 25
	{"output_res_horz_inch", "orhi"},    // 26
	{"output_res_vert_inch", "orvi"},    // 27
	{"print_rate", "cps"},               // 28
	{"wide_char_size", "widcs"},         // 29
	{"buttons", "btns"},                 // 30
	{"bit_image_entwining", "bitwin"},   // 31
	{"bit_image_type", "bitype"},        // 32
	{"magic_cookie_glitch_ul", "OTug"},  // 33
	{"carriage_return_delay", "OTdC"},   // 34
	{"new_line_delay", "OTdN"},          // 35
	{"backspace_delay", "OTdB"},         // 36
	{"horizontal_tab_delay", "OTdT"},    // 37
	{"number_of_function_keys", "OTkn"}, // 38
}

// Strings are the string capabilities.
var Strings = []Name{
	{"back_tab", "cbt"},                   // 0
	{"bell", "bel"},                       // 1
	{"carriage_return", "cr"},             // 2
	{"change_scroll_region", "csr"},       // 3
	{"clear_all_tabs", "tbc"},             // 4
	{"clear_screen", "clear"},             // 5
	{"clr_eol", "el"},                     // 6
	{"clr_eos", "ed"},                     // 7
	{"column_address", "hpa"},             // 8
	{"command_character", "cmdch"},        // 9
	{"cursor_address", "cup"},             // 10
	{"cursor_down", "cud1"},               // 11
	{"cursor_home", "home"},               // 12
	{"cursor_invisible", "civis"},         // 13
	{"cursor_left", "cub1"},               // 14
	{"cursor_mem_address", "mrcup"},       // 15
	{"cursor_normal", "cnorm"},            // 16
	{"cursor_right", "cuf1"},              // 17
	{"cursor_to_ll", "ll"},                // 18
	{"cursor_up", "cuu1"},                 // 19
	{"cursor_visible", "cvvis"},           // 20
	{"delete_character", "dch1"},          // 21
	{"delete_line", "dl1"},                // 22
	{"dis_status_line", "dsl"},            // 23
	{"down_half_line", "hd"},              // 24
	{"enter_alt_charset_mode", "smacs"},   // 25
	{"enter_blink_mode", "blink"},         // 26
	{"enter_bold_mode", "bold"},           // 27
	{"enter_ca_mode", "smcup"},            // 28
	{"enter_delete_mode", "smdc"},         // 29
	{"enter_dim_mode", "dim"},             // 30
	{"enter_insert_mode", "smir"},         // 31
	{"enter_secure_mode", "invis"},        // 32
	{"enter_protected_mode", "prot"},      // 33
	{"enter_reverse_mode", "rev"},         // 34
	{"enter_standout_mode", "smso"},       // 35
	{"enter_underline_mode", "smul"},      // 36
	{"erase_chars", "ech"},                // 37
	{"exit_alt_charset_mode", "rmacs"},    // 38
	{"exit_attribute_mode", "sgr0"},       // 39
	{"exit_ca_mode", "rmcup"},             // 40
	{"exit_delete_mode", "rmdc"},          // 41
	{"exit_insert_mode", "rmir"},          // 42
	{"exit_standout_mode", "rmso"},        // 43
	{"exit_underline_mode", "rmul"},       // 44
	{"flash_screen", "flash"},             // 45
	{"form_feed", "ff"},                   // 46
	{"from_status_line", "fsl"},           // 47
	{"init_1string", "is1"},               // 48
	{"init_2string", "is2"},               // 49
	{"init_3string", "is3"},               // 50
	{"init_file", "if"},                   // 51
	{"insert_character", "ich1"},          // 52
	{"insert_line", "il1"},                // 53
	{"insert_padding", "ip"},              // 54
	{"key_backspace", "kbs"},              // 55
	{"key_catab", "ktbc"},                 // 56
	{"key_clear", "kclr"},                 // 57
	{"key_ctab", "kctab"},                 // 58
	{"key_dc", "kdch1"},                   // 59
	{"key_dl", "kdl1"},                    // 60
	{"key_down", "kcud1"},                 // 61
	{"key_eic", "krmir"},                  // 62
	{"key_eol", "kel"},                    // 63
	{"key_eos", "ked"},                    // 64
	{"key_f0", "kf0"},                     // 65
	{"key_f1", "kf1"},                     // 66
	{"key_f10", "kf10"},                   // 67
	{"key_f2", "kf2"},                     // 68
	{"key_f3", "kf3"},                     // 69
	{"key_f4", "kf4"},                     // 70
	{"key_f5", "kf5"},                     // 71
	{"key_f6", "kf6"},                     // 72
	{"key_f7", "kf7"},                     // 73
	{"key_f8", "kf8"},                     // 74
	{"key_f9", "kf9"},                     // 75
	{"key_home", "khome"},                 // 76
	{"key_ic", "kich1"},                   // 77
	{"key_il", "kil1"},                    // 78
	{"key_left", "kcub1"},                 // 79
	{"key_ll", "kll"},                     // 80
	{"key_npage", "knp"},                  // 81
	{"key_ppage", "kpp"},                  // 82
	{"key_right", "kcuf1"},                // 83
	{"key_sf", "kind"},                    // 84
	{"key_sr", "kri"},                     // 85
	{"key_stab", "khts"},                  // 86
	{"key_up", "kcuu1"},                   // 87
	{"keypad_local", "rmkx"},              // 88
	{"keypad_xmit", "smkx"},               // 89
	{"lab_f0", "lf0"},                     // 90
	{"lab_f1", "lf1"},                     // 91
	{"lab_f10", "lf10"},                   // 92
	{"lab_f2", "lf2"},                     // 93
	{"lab_f3", "lf3"},                     // 94
	{"lab_f4", "lf4"},                     // 95
	{"lab_f5", "lf5"},                     // 96
	{"lab_f6", "lf6"},                     // 97
	{"lab_f7", "lf7"},                     // 98
	{"lab_f8", "lf8"},                     // 99
	{"lab_f9", "lf9"},                     // 100
	{"meta_off", "rmm"},                   // 101
	{"meta_on", "smm"},                    // 102
	{"newline", "nel"},                    // 103
	{"pad_char", "pad"},                   // 104
	{"parm_dch", "dch"},                   // 105
	{"parm_delete_line", "dl"},            // 106
	{"parm_down_cursor", "cud"},           // 107
	{"parm_ich", "ich"},                   // 108
	{"parm_index", "indn"},                // 109
	{"parm_insert_line", "il"},            // 110
	{"parm_left_cursor", "cub"},           // 111
	{"parm_right_cursor", "cuf"},          // 112
	{"parm_rindex", "rin"},                // 113
	{"parm_up_cursor", "cuu"},             // 114
	{"pkey_key", "pfkey"},                 // 115
	{"pkey_local", "pfloc"},               // 116
	{"pkey_xmit", "pfx"},                  // 117
	{"print_screen", "mc0"},               // 118
	{"prtr_off", "mc4"},                   // 119
	{"prtr_on", "mc5"},                    // 120
	{"repeat_char", "rep"},                // 121
	{"reset_1string", "rs1"},              // 122
	{"reset_2string", "rs2"},              // 123
	{"reset_3string", "rs3"},              // 124
	{"reset_file", "rf"},                  // 125
	{"restore_cursor", "rc"},              // 126
	{"row_address", "vpa"},                // 127
	{"save_cursor", "sc"},                 // 128
	{"scroll_forward", "ind"},             // 129
	{"scroll_reverse", "ri"},              // 130
	{"set_attributes", "sgr"},             // 131
	{"set_tab", "hts"},                    // 132
	{"set_window", "wind"},                // 133
	{"tab", "ht"},                         // 134
	{"to_status_line", "tsl"},             // 135
	{"underline_char", "uc"},              // 136
	{"up_half_line", "hu"},                // 137
	{"init_prog", "iprog"},                // 138
	{"key_a1", "ka1"},                     // 139
	{"key_a3", "ka3"},                     // 140
	{"key_b2", "kb2"},                     // 141
	{"key_c1", "kc1"},                     // 142
	{"key_c3", "kc3"},                     // 143
	{"prtr_non", "mc5p"},                  // 144
	{"char_padding", "rmp"},               // 145
	{"acs_chars", "acsc"},                 // 146
	{"plab_norm", "pln"},                  // 147
	{"key_btab", "kcbt"},                  // 148
	{"enter_xon_mode", "smxon"},           // 149
	{"exit_xon_mode", "rmxon"},            // 150
	{"enter_am_mode", "smam"},             // 151
	{"exit_am_mode", "rmam"},              // 152
	{"xon_character", "xonc"},             // 153
	{"xoff_character", "xoffc"},           // 154
	{"ena_acs", "enacs"},                  // 155
	{"label_on", "smln"},                  // 156
	{"label_off", "rmln"},                 // 157
	{"key_beg", "kbeg"},                   // 158
	{"key_cancel", "kcan"},                // 159
	{"key_close", "kclo"},                 // 160
	{"key_command", "kcmd"},               // 161
	{"key_copy", "kcpy"},                  // 162
	{"key_create", "kcrt"},                // 163
	{"key_end", "kend"},                   // 164
	{"key_enter", "kent"},                 // 165
	{"key_exit", "kext"},                  // 166
	{"key_find", "kfnd"},                  // 167
	{"key_help", "khlp"},                  // 168
	{"key_mark", "kmrk"},                  // 169
	{"key_message", "kmsg"},               // 170
	{"key_move", "kmov"},                  // 171
	{"key_next", "knxt"},                  // 172
	{"key_open", "kopn"},                  // 173
	{"key_options", "kopt"},               // 174
	{"key_previous", "kprv"},              // 175
	{"key_print", "kprt"},                 // 176
	{"key_redo", "krdo"},                  // 177
	{"key_reference", "kref"},             // 178
	{"key_refresh", "krfr"},               // 179
	{"key_replace", "krpl"},               // 180
	{"key_restart", "krst"},               // 181
	{"key_resume", "kres"},                // 182
	{"key_save", "ksav"},                  // 183
	{"key_suspend", "kspd"},               // 184
	{"key_undo", "kund"},                  // 185
	{"key_sbeg", "kBEG"},                  // 186
	{"key_scancel", "kCAN"},               // 187
	{"key_scommand", "kCMD"},              // 188
	{"key_scopy", "kCPY"},                 // 189
	{"key_screate", "kCRT"},               // 190
	{"key_sdc", "kDC"},                    // 191
	{"key_sdl", "kDL"},                    // 192
	{"key_select", "kslt"},                // 193
	{"key_send", "kEND"},                  // 194
	{"key_seol", "kEOL"},                  // 195
	{"key_sexit", "kEXT"},                 // 196
	{"key_sfind", "kFND"},                 // 197
	{"key_shelp", "kHLP"},                 // 198
	{"key_shome", "kHOM"},                 // 199
	{"key_sic", "kIC"},                    // 200
	{"key_sleft", "kLFT"},                 // 201
	{"key_smessage", "kMSG"},              // 202
	{"key_smove", "kMOV"},                 // 203
	{"key_snext", "kNXT"},                 // 204
	{"key_soptions", "kOPT"},              // 205
	{"key_sprevious", "kPRV"},             // 206
	{"key_sprint", "kPRT"},                // 207
	{"key_sredo", "kRDO"},                 // 208
	{"key_sreplace", "kRPL"},              // 209
	{"key_sright", "kRIT"},                // 210
	{"key_srsume", "kRES"},                // 211
	{"key_ssave", "kSAV"},                 // 212
	{"key_ssuspend", "kSPD"},              // 213
	{"key_sundo", "kUND"},                 // 214
	{"req_for_input", "rfi"},              // 215
	{"key_f11", "kf11"},                   // 216
	{"key_f12", "kf12"},                   // 217
	{"key_f13", "kf13"},                   // 218
	{"key_f14", "kf14"},                   // 219
	{"key_f15", "kf15"},                   // 220
	{"key_f16", "kf16"},                   // 221
	{"key_f17", "kf17"},                   // 222
	{"key_f18", "kf18"},                   // 223
	{"key_f19", "kf19"},                   // 224
	{"key_f20", "kf20"},                   // 225
	{"key_f21", "kf21"},                   // 226
	{"key_f22", "kf22"},                   // 227
	{"key_f23", "kf23"},                   // 228
	{"key_f24", "kf24"},                   // 229
	{"key_f25", "kf25"},                   // 230
	{"key_f26", "kf26"},                   // 231
	{"key_f27", "kf27"},                   // 232
	{"key_f28", "kf28"},                   // 233
	{"key_f29", "kf29"},                   // 234
	{"key_f30", "kf30"},                   // 235
	{"key_f31", "kf31"},                   // 236
	{"key_f32", "kf32"},                   // 237
	{"key_f33", "kf33"},                   // 238
	{"key_f34", "kf34"},                   // 239
	{"key_f35", "kf35"},                   // 240
	{"key_f36", "kf36"},                   // 241
	{"key_f37", "kf37"},                   // 242
	{"key_f38", "kf38"},                   // 243
	{"key_f39", "kf39"},                   // 244
	{"key_f40", "kf40"},                   // 245
	{"key_f41", "kf41"},                   // 246
	{"key_f42", "kf42"},                   // 247
	{"key_f43", "kf43"},                   // 248
	{"key_f44", "kf44"},                   // 249
	{"key_f45", "kf45"},                   // 250
	{"key_f46", "kf46"},                   // 251
	{"key_f47", "kf47"},                   // 252
	{"key_f48", "kf48"},                   // 253
	{"key_f49", "kf49"},                   // 254
	{"key_f50", "kf50"},                   // 255
	{"key_f51", "kf51"},                   // 256
	{"key_f52", "kf52"},                   // 257
	{"key_f53", "kf53"},                   // 258
	{"key_f54", "kf54"},                   // 259
	{"key_f55", "kf55"},                   // 260
	{"key_f56", "kf56"},                   // 261
	{"key_f57", "kf57"},                   // 262
	{"key_f58", "kf58"},                   // 263
	{"key_f59", "kf59"},                   // 264
	{"key_f60", "kf60"},                   // 265
	{"key_f61", "kf61"},                   // 266
	{"key_f62", "kf62"},                   // 267
	{"key_f63", "kf63"},                   // 268
	{"clr_bol", "el1"},                    // 269
	{"clear_margins", "mgc"},              // 270
	{"set_left_margin", "smgl"},           // 271
	{"set_right_margin", "smgr"},          // 272
	{"label_format", "fln"},               // 273
	{"set_clock", "sclk"},                 // 274
	{"display_clock", "dclk"},             // 275
	{"remove_clock", "rmclk"},             // 276
	{"create_window", "cwin"},             // 277
	{"goto_window", "wingo"},              // 278
	{"hangup", "hup"},                     // 279
	{"dial_phone", "dial"},                // 280
	{"quick_dial", "qdial"},               // 281
	{"tone", "tone"},                      // 282
	{"pulse", "pulse"},                    // 283
	{"flash_hook", "hook"},                // 284
	{"fixed_pause", "pause"},              // 285
	{"wait_tone", "wait"},                 // 286
	{"user0", "u0"},                       // 287
	{"user1", "u1"},                       // 288
	{"user2", "u2"},                       // 289
	{"user3", "u3"},                       // 290
	{"user4", "u4"},                       // 291
	{"user5", "u5"},                       // 292
	{"user6", "u6"},                       // 293
	{"user7", "u7"},                       // 294
	{"user8", "u8"},                       // 295
	{"user9", "u9"},                       // 296
	{"orig_pair", "op"},                   // 297
	{"orig_colors", "oc"},                 // 298
	{"initialize_color", "initc"},         // 299
	{"initialize_pair", "initp"},          // 300
	{"set_color_pair", "scp"},             // 301
	{"set_foreground", "setf"},            // 302
	{"set_background", "setb"},            // 303
	{"change_char_pitch", "cpi"},          // 304
	{"change_line_pitch", "lpi"},          // 305
	{"change_res_horz", "chr"},            // 306
	{"change_res_vert", "cvr"},            // 307
	{"define_char", "defc"},               // 308
	{"enter_doublewide_mode", "swidm"},    // 309
	{"enter_draft_quality", "sdrfq"},      // 310
	{"enter_italics_mode", "sitm"},        // 311
	{"enter_leftward_mode", "slm"},        // 312
	{"enter_micro_mode", "smicm"},         // 313
	{"enter_near_letter_quality", "snlq"}, // 314
	{"enter_normal_quality", "snrmq"},     // 315
	{"enter_shadow_mode", "sshm"},         // 316
	{"enter_subscript_mode", "ssubm"},     // 317
	{"enter_superscript_mode", "ssupm"},   // 318
	{"enter_upward_mode", "sum"},          // 319
	{"exit_doublewide_mode", "rwidm"},     // 320
	{"exit_italics_mode", "ritm"},         // 321
	{"exit_leftward_mode", "rlm"},         // 322
	{"exit_micro_mode", "rmicm"},          // 323
	{"exit_shadow_mode", "rshm"},          // 324
	{"exit_subscript_mode", "rsubm"},      // 325
	{"exit_superscript_mode", "rsupm"},    // 326
	{"exit_upward_mode", "rum"},           // 327
	{"micro_column_address", "mhpa"},      // 328
	{"micro_down", "mcud1"},               // 329
	{"micro_left", "mcub1"},               // 330
	{"micro_right", "mcuf1"},              // 331
	{"micro_row_address", "mvpa"},         // 332
	{"micro_up", "mcuu1"},                 // 333
	{"order_of_pins", "porder"},           // 334
	{"parm_down_micro", "mcud"},           // 335
	{"parm_left_micro", "mcub"},           // 336
	{"parm_right_micro", "mcuf"},          // 337
	{"parm_up_micro", "mcuu"},             // 338
	{"select_char_set", "scs"},            // 339
	{"set_bottom_margin", "smgb"},         // 340
	{"set_bottom_margin_parm", "smgbp"},   // 341
	{"set_left_margin_parm", "smglp"},     // 342
	{"set_right_margin_parm", "smgrp"},    // 343
	{"set_top_margin", "smgt"},            // 344
	{"set_top_margin_parm", "smgtp"},      // 345
	{"start_bit_image", "sbim"},           // 346
	{"start_char_set_def", "scsd"},        // 347
	{"stop_bit_image", "rbim"},            // 348
	{"stop_char_set_def", "rcsd"},         // 349
	{"subscript_characters", "subcs"},     // 350
	{"superscript_characters", "supcs"},   // 351
	{"these_cause_cr", "docr"},            // 352
	{"zero_motion", "zerom"},              // 353
	{"char_set_names", "csnm"},            // 354
	{"key_mouse", "kmous"},                // 355
	{"mouse_info", "minfo"},               // 356
	{"req_mouse_pos", "reqmp"},            // 357
	{"get_mouse", "getm"},                 // 358
	{"set_a_foreground", "setaf"},         // 359
	{"set_a_background", "setab"},         // 360
	{"pkey_plab", "pfxl"},                 // 361
	{"device_type", "devt"},               // 362
	{"code_set_init", "csin"},             // 363
	{"set0_des_seq", "s0ds"},              // 364
	{"set1_des_seq", "s1ds"},              // 365
	{"set2_des_seq", "s2ds"},              // 366
	{"set3_des_seq", "s3ds"},              // 367
	{"set_lr_margin", "smglr"},            // 368
	{"set_tb_margin", "smgtb"},            // 369
	{"bit_image_repeat", "birep"},         // 370
	{"bit_image_newline", "binel"},        // 371
	{"bit_image_carriage_return", "bicr"}, // 372
	{"color_names", "colornm"},            // 373
	{"define_bit_image_region", "defbi"},  // 374
	{"end_bit_image_region", "endbi"},     // 375
	{"set_color_band", "setcolor"},        // 376
	{"set_page_length", "slines"},         // 377
	{"display_pc_char", "dispc"},          // 378
	{"enter_pc_charset_mode", "smpch"},    // 379
	{"exit_pc_charset_mode", "rmpch"},     // 380
	{"enter_scancode_mode", "smsc"},       // 381
	{"exit_scancode_mode", "rmsc"},        // 382
	{"pc_term_options", "pctrm"},          // 383
	{"scancode_escape", "scesc"},          // 384
	{"alt_scancode_esc", "scesa"},         // 385
	{"enter_horizontal_hl_mode", "ehhlm"}, // 386
	{"enter_left_hl_mode", "elhlm"},       // 387
	{"enter_low_hl_mode", "elohlm"},       // 388
	{"enter_right_hl_mode", "erhlm"},      // 389
	{"enter_top_hl_mode", "ethlm"},        // 390
	{"enter_vertical_hl_mode", "evhlm"},   // 391
	{"set_a_attributes", "sgr1"},          // 392
	{"set_pglen_inch", "slength"},         // 393
	{"termcap_init2", "OTi2"},             // 394
	{"termcap_reset", "OTrs"},             // 395
	{"linefeed_if_not_lf", "OTnl"},        // 396
	{"backspace_if_not_bs", "OTbc"},       // 397
	{"other_non_function_keys", "OTko"},   // 398
	{"arrow_key_map", "OTma"},             // 399
	{"acs_ulcorner", "OTG2"},              // 400
	{"acs_llcorner", "OTG3"},              // 401
	{"acs_urcorner", "OTG1"},              // 402
	{"acs_lrcorner", "OTG4"},              // 403
	{"acs_ltee", "OTGR"},                  // 404
	{"acs_rtee", "OTGL"},                  // 405
	{"acs_btee", "OTGU"},                  // 406
	{"acs_ttee", "OTGD"},                  // 407
	{"acs_hline", "OTGH"},                 // 408
	{"acs_vline", "OTGV"},                 // 409
	{"acs_plus", "OTGC"},                  // 410
	{"memory_lock", "meml"},               // 411
	{"memory_unlock", "memu"},             // 412
	{"box_chars_1", "box1"},               // 413
}
