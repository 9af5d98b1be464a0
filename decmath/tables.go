package decmath

// Constant tables hold 1024 significant digits, rounded half-up.
const tableDigits = 1024

const (
	// π
	piText = "3.14159265358979323846264338327950288419716939937510582097494459" +
		"2307816406286208998628034825342117067982148086513282306647093844" +
		"6095505822317253594081284811174502841027019385211055596446229489" +
		"5493038196442881097566593344612847564823378678316527120190914564" +
		"8566923460348610454326648213393607260249141273724587006606315588" +
		"1748815209209628292540917153643678925903600113305305488204665213" +
		"8414695194151160943305727036575959195309218611738193261179310511" +
		"8548074462379962749567351885752724891227938183011949129833673362" +
		"4406566430860213949463952247371907021798609437027705392171762931" +
		"7675238467481846766940513200056812714526356082778577134275778960" +
		"9173637178721468440901224953430146549585371050792279689258923542" +
		"0199561121290219608640344181598136297747713099605187072113499999" +
		"9837297804995105973173281609631859502445945534690830264252230825" +
		"3344685035261931188171010003137838752886587533208381420617177669" +
		"1473035982534904287554687311595628638823537875937519577818577805" +
		"3217122680661300192787661119590921642019893809525720106548586327" +
		"9"
	// e
	eText = "2.71828182845904523536028747135266249775724709369995957496696762" +
		"7724076630353547594571382178525166427427466391932003059921817413" +
		"5966290435729003342952605956307381323286279434907632338298807531" +
		"9525101901157383418793070215408914993488416750924476146066808226" +
		"4800168477411853742345442437107539077744992069551702761838606261" +
		"3313845830007520449338265602976067371132007093287091274437470472" +
		"3069697720931014169283681902551510865746377211125238978442505695" +
		"3696770785449969967946864454905987931636889230098793127736178215" +
		"4249992295763514822082698951936680331825288693984964651058209392" +
		"3982948879332036250944311730123819706841614039701983767932068328" +
		"2376464804295311802328782509819455815301756717361332069811250996" +
		"1818815930416903515988885193458072738667385894228792284998920868" +
		"0582574927961048419844436346324496848756023362482704197862320900" +
		"2160990235304369941849146314093431738143640546253152096183690888" +
		"7070167683964243781405927145635490613031072085103837505101157477" +
		"0417189861068739696552126715468895703503540212340784981933432106" +
		"8"
	// ln 2
	ln2Text = "0.69314718055994530941723212145817656807550013436025525412068000" +
		"9493393621969694715605863326996418687542001481020570685733685520" +
		"2357581305570326707516350759619307275708283714351903070386238916" +
		"7347112335011536449795523912047517268157493206515552473413952588" +
		"2950453007095326366642654104239157814952043740430385500801944170" +
		"6416715186447128399681717845469570262716310645461502572074024816" +
		"3777338963855069526066834113727387372292895649354702576265209885" +
		"9693201965058554764703306793654432547632744951250406069438147104" +
		"6899465062201677204245245296126879465461931651746813926725041038" +
		"0254625965686914419287160829380317271436778265487756648508567407" +
		"7648451464439940461422603193096735402574446070308096085047486638" +
		"5231381816767514386674766478908814371419854942315199735488037516" +
		"5861275352916610007105355824987941472950929311389715599820565439" +
		"2871700072180857610252368892132449713893203784393530887748259701" +
		"7155910708823683627589842589185353024363421436706118923678919237" +
		"2314672321720534016492568727477823445353476481149418642386776774" +
		"41"
	// ln 10
	ln10Text = "2.30258509299404568401799145468436420760110148862877297603332790" +
		"0967572609677352480235997205089598298341967784042286248633409525" +
		"4650828067566662873690987816894829072083255546808437998948262331" +
		"9852839350530896537773262884616336622228769821988674654366747440" +
		"4243274365155048934314939391479619404400222105101714174800368808" +
		"4012647080685567743216228355220114804663715659121373450747856947" +
		"6834636167921018064450706480002775026849167465505868569356734206" +
		"7058113642922455440575892572420824131469568901675894025677631135" +
		"6919292033376587141660230105703089634572075440370847469940168269" +
		"2828084811842893148485249486448719278096762712757753970276686059" +
		"5249671667418348570442250719796500471495105049221477656763693866" +
		"2976979522110718264549734772662425709429322582798502585509785265" +
		"3832076067263171643095059950878075237103331011978575473315414218" +
		"0842754386359177811705430982748238504564801909561029929182431823" +
		"7525357709750539565187697510374970888692180205189339507238539205" +
		"1446341972652872869651108625714921988499787488737713456862091670" +
		"6"
	// φ
	phiText = "1.61803398874989484820458683436563811772030917980576286213544862" +
		"2705260462818902449707207204189391137484754088075386891752126633" +
		"8622235369317931800607667263544333890865959395829056383226613199" +
		"2829026788067520876689250171169620703222104321626954862629631361" +
		"4438149758701220340805887954454749246185695364864449241044320771" +
		"3449470495658467885098743394422125448770664780915884607499887124" +
		"0076521705751797883416625624940758906970400028121042762177111777" +
		"8053153171410117046665991466979873176135600670874807101317952368" +
		"9427521948435305678300228785699782977834784587822891109762500302" +
		"6961561700250464338243776486102838312683303724292675263116533924" +
		"7316711121158818638513316203840052221657912866752946549068113171" +
		"5993432359734949850904094762132229810172610705961164562990981629" +
		"0555208524790352406020172799747175342777592778625619432082750513" +
		"1218156285512224809394712341451702237358057727861600868838295230" +
		"4592647878017889921990270776903895321968198615143780314997411069" +
		"2608867429622675756052317277752035361393621076738937645560606059" +
		"2"
)
